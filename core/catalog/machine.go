package catalog

// Machine is one arcade title, BIOS or device record.
// Name is the identity and never changes after creation.
type Machine struct {
	Name         string `json:"name"`
	SourceFile   string `json:"source_file,omitempty"`
	RomOf        string `json:"rom_of,omitempty"`
	CloneOf      string `json:"clone_of,omitempty"`
	IsBios       *bool  `json:"is_bios,omitempty"`
	IsDevice     *bool  `json:"is_device,omitempty"`
	Runnable     *bool  `json:"runnable,omitempty"`
	IsMechanical *bool  `json:"is_mechanical,omitempty"`
	SampleOf     string `json:"sample_of,omitempty"`

	Description  string `json:"description,omitempty"`
	Year         string `json:"year,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	DriverStatus string `json:"driver_status,omitempty"`

	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	IsMature    *bool  `json:"is_mature,omitempty"`
	Series      string `json:"series,omitempty"`
	// Players is the raw nplayers value, stored verbatim.
	Players   string   `json:"players,omitempty"`
	Languages []string `json:"languages,omitempty"`

	Roms            []Rom            `json:"roms,omitempty"`
	BiosSets        []BiosSet        `json:"bios_sets,omitempty"`
	DeviceRefs      []DeviceRef      `json:"device_refs,omitempty"`
	Softwares       []Software       `json:"softwares,omitempty"`
	Samples         []Sample         `json:"samples,omitempty"`
	Disks           []Disk           `json:"disks,omitempty"`
	HistorySections []HistorySection `json:"history_sections,omitempty"`
	Resources       []Resource       `json:"resources,omitempty"`

	Derived Derived `json:"derived"`
}

// Derived holds values computed from the raw fields. Raw fields are never
// overwritten so the normalization pass can be re-run.
type Derived struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Players      string `json:"players"`
	// IsParent is set once by the catalog reader and never recomputed.
	IsParent bool   `json:"is_parent"`
	Year     string `json:"year"`
}

type Rom struct {
	Name   string `json:"name"`
	Size   int64  `json:"size"`
	Merge  string `json:"merge,omitempty"`
	Status string `json:"status,omitempty"`
	CRC    string `json:"crc,omitempty"`
	SHA1   string `json:"sha1,omitempty"`
}

type BiosSet struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DeviceRef struct {
	Name string `json:"name"`
}

type Software struct {
	Name string `json:"name"`
}

type Sample struct {
	Name string `json:"name"`
}

type Disk struct {
	Name   string `json:"name"`
	SHA1   string `json:"sha1,omitempty"`
	Merge  string `json:"merge,omitempty"`
	Status string `json:"status,omitempty"`
	Region string `json:"region,omitempty"`
}

// HistorySection is a named block of history text. Order is 1..10.
type HistorySection struct {
	Name  string `json:"name"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

// Resource is an artwork or media file attached to a machine. Type is the
// resource section it was listed under (snap, cabinets, ...).
type Resource struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	CRC  string `json:"crc,omitempty"`
	SHA1 string `json:"sha1,omitempty"`
}

// IsClone reports whether the machine references a parent set.
func (m *Machine) IsClone() bool {
	return m.CloneOf != "" || m.RomOf != ""
}

// Flag reads an optional flag, treating absent as false.
func Flag(b *bool) bool {
	return b != nil && *b
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}
