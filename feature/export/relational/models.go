package relational

// Dimension tables. Names are unique within their table; subcategory names
// are unique per category.

type Series struct {
	ID   uint   `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(255);uniqueIndex;not null"`
}

func (Series) TableName() string { return "series" }

type Category struct {
	ID   uint   `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(255);uniqueIndex;not null"`
}

func (Category) TableName() string { return "categories" }

type Subcategory struct {
	ID         uint   `gorm:"primaryKey;column:id"`
	Name       string `gorm:"column:name;type:varchar(255);uniqueIndex:idx_subcategory_category;not null"`
	CategoryID uint   `gorm:"column:category_id;uniqueIndex:idx_subcategory_category;not null"`
}

func (Subcategory) TableName() string { return "subcategories" }

type Manufacturer struct {
	ID   uint   `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(255);uniqueIndex;not null"`
}

func (Manufacturer) TableName() string { return "manufacturers" }

type Language struct {
	ID   uint   `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(255);uniqueIndex;not null"`
}

func (Language) TableName() string { return "languages" }

type Player struct {
	ID   uint   `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(255);uniqueIndex;not null"`
}

func (Player) TableName() string { return "players" }

// Machine is the denormalized machine row. The *_id columns are resolved
// after all rows are written.
type Machine struct {
	ID           uint   `gorm:"primaryKey;column:id"`
	Name         string `gorm:"column:name;type:varchar(255);uniqueIndex;not null"`
	SourceFile   string `gorm:"column:source_file;type:varchar(255)"`
	RomOf        string `gorm:"column:rom_of;type:varchar(255)"`
	CloneOf      string `gorm:"column:clone_of;type:varchar(255)"`
	IsBios       *bool  `gorm:"column:is_bios"`
	IsDevice     *bool  `gorm:"column:is_device"`
	Runnable     *bool  `gorm:"column:runnable"`
	IsMechanical *bool  `gorm:"column:is_mechanical"`
	SampleOf     string `gorm:"column:sample_of;type:varchar(255)"`
	Description  string `gorm:"column:description;type:text"`
	Year         string `gorm:"column:year;type:varchar(16)"`
	Manufacturer string `gorm:"column:manufacturer;type:varchar(255)"`
	DriverStatus string `gorm:"column:driver_status;type:varchar(32)"`
	Languages    string `gorm:"column:languages;type:text"`
	Players      string `gorm:"column:players;type:varchar(255)"`
	Series       string `gorm:"column:series;type:varchar(255)"`
	Category     string `gorm:"column:category;type:varchar(255)"`
	Subcategory  string `gorm:"column:subcategory;type:varchar(255)"`
	IsMature     *bool  `gorm:"column:is_mature"`

	DisplayName            string `gorm:"column:display_name;type:text"`
	NormalizedManufacturer string `gorm:"column:normalized_manufacturer;type:varchar(255)"`
	NormalizedPlayers      string `gorm:"column:normalized_players;type:varchar(255)"`
	IsParent               bool   `gorm:"column:is_parent"`
	NormalizedYear         string `gorm:"column:normalized_year;type:varchar(16)"`

	CategoryID     *uint `gorm:"column:category_id;index"`
	SubcategoryID  *uint `gorm:"column:subcategory_id;index"`
	SeriesID       *uint `gorm:"column:series_id;index"`
	ManufacturerID *uint `gorm:"column:manufacturer_id;index"`
}

func (Machine) TableName() string { return "machines" }

// Child tables carry the owning machine name; machine_id is resolved later.

type Rom struct {
	ID          uint   `gorm:"primaryKey;column:id"`
	MachineID   *uint  `gorm:"column:machine_id;index"`
	MachineName string `gorm:"column:machine_name;type:varchar(255);index;not null"`
	Name        string `gorm:"column:name;type:varchar(255)"`
	Size        int64  `gorm:"column:size"`
	Merge       string `gorm:"column:merge;type:varchar(255)"`
	Status      string `gorm:"column:status;type:varchar(32)"`
	CRC         string `gorm:"column:crc;type:varchar(16)"`
	SHA1        string `gorm:"column:sha1;type:varchar(64)"`
}

func (Rom) TableName() string { return "roms" }

type BiosSet struct {
	ID          uint   `gorm:"primaryKey;column:id"`
	MachineID   *uint  `gorm:"column:machine_id;index"`
	MachineName string `gorm:"column:machine_name;type:varchar(255);index;not null"`
	Name        string `gorm:"column:name;type:varchar(255)"`
	Description string `gorm:"column:description;type:text"`
}

func (BiosSet) TableName() string { return "bios_sets" }

type DeviceRef struct {
	ID          uint   `gorm:"primaryKey;column:id"`
	MachineID   *uint  `gorm:"column:machine_id;index"`
	MachineName string `gorm:"column:machine_name;type:varchar(255);index;not null"`
	Name        string `gorm:"column:name;type:varchar(255)"`
}

func (DeviceRef) TableName() string { return "device_refs" }

type Software struct {
	ID          uint   `gorm:"primaryKey;column:id"`
	MachineID   *uint  `gorm:"column:machine_id;index"`
	MachineName string `gorm:"column:machine_name;type:varchar(255);index;not null"`
	Name        string `gorm:"column:name;type:varchar(255)"`
}

func (Software) TableName() string { return "softwares" }

type Sample struct {
	ID          uint   `gorm:"primaryKey;column:id"`
	MachineID   *uint  `gorm:"column:machine_id;index"`
	MachineName string `gorm:"column:machine_name;type:varchar(255);index;not null"`
	Name        string `gorm:"column:name;type:varchar(255)"`
}

func (Sample) TableName() string { return "samples" }

type Disk struct {
	ID          uint   `gorm:"primaryKey;column:id"`
	MachineID   *uint  `gorm:"column:machine_id;index"`
	MachineName string `gorm:"column:machine_name;type:varchar(255);index;not null"`
	Name        string `gorm:"column:name;type:varchar(255)"`
	SHA1        string `gorm:"column:sha1;type:varchar(64)"`
	Merge       string `gorm:"column:merge;type:varchar(255)"`
	Status      string `gorm:"column:status;type:varchar(32)"`
	Region      string `gorm:"column:region;type:varchar(64)"`
}

func (Disk) TableName() string { return "disks" }

type HistorySection struct {
	ID          uint   `gorm:"primaryKey;column:id"`
	MachineID   *uint  `gorm:"column:machine_id;index"`
	MachineName string `gorm:"column:machine_name;type:varchar(255);index;not null"`
	Name        string `gorm:"column:name;type:varchar(64)"`
	Text        string `gorm:"column:text;type:text"`
	Order       int    `gorm:"column:order"`
}

func (HistorySection) TableName() string { return "history_sections" }

type Resource struct {
	ID          uint   `gorm:"primaryKey;column:id"`
	MachineID   *uint  `gorm:"column:machine_id;index"`
	MachineName string `gorm:"column:machine_name;type:varchar(255);index;not null"`
	Type        string `gorm:"column:type;type:varchar(64)"`
	Name        string `gorm:"column:name;type:varchar(255)"`
	Size        int64  `gorm:"column:size"`
	CRC         string `gorm:"column:crc;type:varchar(16)"`
	SHA1        string `gorm:"column:sha1;type:varchar(64)"`
}

func (Resource) TableName() string { return "resources" }

// Junction tables.

type MachineLanguage struct {
	MachineID  uint `gorm:"primaryKey;column:machine_id;autoIncrement:false"`
	LanguageID uint `gorm:"primaryKey;column:language_id;autoIncrement:false"`
}

func (MachineLanguage) TableName() string { return "machine_languages" }

type MachinePlayer struct {
	MachineID uint `gorm:"primaryKey;column:machine_id;autoIncrement:false"`
	PlayerID  uint `gorm:"primaryKey;column:player_id;autoIncrement:false"`
}

func (MachinePlayer) TableName() string { return "machine_players" }

// Models lists every table model in creation order.
func Models() []any {
	return []any{
		&Series{}, &Category{}, &Subcategory{}, &Manufacturer{}, &Language{}, &Player{},
		&Machine{},
		&Rom{}, &BiosSet{}, &DeviceRef{}, &Software{}, &Sample{}, &Disk{}, &HistorySection{}, &Resource{},
		&MachineLanguage{}, &MachinePlayer{},
	}
}

// childTables are the tables whose machine_id is resolved from machine_name.
var childTables = []string{
	"roms", "bios_sets", "device_refs", "softwares", "samples", "disks", "history_sections", "resources",
}
