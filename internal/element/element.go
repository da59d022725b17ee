// Package element holds the periodic table data model and the embedded dataset it is loaded from.
package element

// Element is one periodic table entry. Every field is optional: a nil pointer
// or nil slice means the dataset has no value for it.
type Element struct {
	// Identity
	Name   *string `json:"name,omitempty"`
	Symbol *string `json:"symbol,omitempty"`
	Number *uint32 `json:"number,omitempty"`

	// Classification
	Category *string `json:"category,omitempty"`
	Phase    *string `json:"phase,omitempty"`

	// Descriptive text
	Summary               *string `json:"summary,omitempty"`
	Appearance            *string `json:"appearance,omitempty"`
	DiscoveredBy          *string `json:"discovered_by,omitempty"`
	NamedBy               *string `json:"named_by,omitempty"`
	Color                 *string `json:"color,omitempty"`
	Source                *string `json:"source,omitempty"`
	SpectralImg           *string `json:"spectral_img,omitempty"`
	ElectronConfiguration *string `json:"electron_configuration,omitempty"`

	// Numeric properties
	AtomicMass               *float64 `json:"atomic_mass,omitempty"`
	Boil                     *float64 `json:"boil,omitempty"`
	Density                  *float64 `json:"density,omitempty"`
	Melt                     *float64 `json:"melt,omitempty"`
	MolarHeat                *float64 `json:"molar_heat,omitempty"`
	ElectronAffinity         *float64 `json:"electron_affinity,omitempty"`
	ElectronegativityPauling *float64 `json:"electronegativity_pauling,omitempty"`

	// Position in the table grid
	Period *uint32 `json:"period,omitempty"`
	XPos   *uint32 `json:"xpos,omitempty"`
	YPos   *uint32 `json:"ypos,omitempty"`

	// Shells holds electron counts per shell, outermost last.
	Shells             []uint32  `json:"shells,omitempty"`
	IonizationEnergies []float64 `json:"ionization_energies,omitempty"`
}

// Summary is the compact form of an element used in listings.
type Summary struct {
	Number   uint32 `json:"number"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Phase    string `json:"phase,omitempty"`
	Period   uint32 `json:"period,omitempty"`
}

// Clone returns a deep copy so callers never share pointers with the loaded collection.
func (e Element) Clone() Element {
	c := Element{
		Name:                     clonePtr(e.Name),
		Symbol:                   clonePtr(e.Symbol),
		Number:                   clonePtr(e.Number),
		Category:                 clonePtr(e.Category),
		Phase:                    clonePtr(e.Phase),
		Summary:                  clonePtr(e.Summary),
		Appearance:               clonePtr(e.Appearance),
		DiscoveredBy:             clonePtr(e.DiscoveredBy),
		NamedBy:                  clonePtr(e.NamedBy),
		Color:                    clonePtr(e.Color),
		Source:                   clonePtr(e.Source),
		SpectralImg:              clonePtr(e.SpectralImg),
		ElectronConfiguration:    clonePtr(e.ElectronConfiguration),
		AtomicMass:               clonePtr(e.AtomicMass),
		Boil:                     clonePtr(e.Boil),
		Density:                  clonePtr(e.Density),
		Melt:                     clonePtr(e.Melt),
		MolarHeat:                clonePtr(e.MolarHeat),
		ElectronAffinity:         clonePtr(e.ElectronAffinity),
		ElectronegativityPauling: clonePtr(e.ElectronegativityPauling),
		Period:                   clonePtr(e.Period),
		XPos:                     clonePtr(e.XPos),
		YPos:                     clonePtr(e.YPos),
	}
	if e.Shells != nil {
		c.Shells = append(make([]uint32, 0, len(e.Shells)), e.Shells...)
	}
	if e.IonizationEnergies != nil {
		c.IonizationEnergies = append(make([]float64, 0, len(e.IonizationEnergies)), e.IonizationEnergies...)
	}
	return c
}

// ToSummary builds the listing form. Absent fields become zero values.
func (e Element) ToSummary() Summary {
	return Summary{
		Number:   deref(e.Number),
		Symbol:   deref(e.Symbol),
		Name:     deref(e.Name),
		Category: deref(e.Category),
		Phase:    deref(e.Phase),
		Period:   deref(e.Period),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
