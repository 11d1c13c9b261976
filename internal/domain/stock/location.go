package stock

// Location usage kinds as reported by the remote backend.
const (
	UsageInternal      = "internal"
	UsageCustomer      = "customer"
	UsageSupplier      = "supplier"
	UsageView          = "view"
	UsageInventoryLoss = "inventory"
	UsageTransit       = "transit"
)

// Location is a storage location record. Names come in up to three flavors:
// complete_name carries the full path ("WH/Stock/Shelf A"), display_name a
// presentation variant, and name the bare leaf segment.
type Location struct {
	ID           RecordID  `json:"id"`
	Name         string    `json:"name"`
	CompleteName string    `json:"complete_name"`
	DisplayName  string    `json:"display_name"`
	Usage        string    `json:"usage"`
	ParentRef    EntityRef `json:"location_id"`

	PosX int `json:"posx"`
	PosY int `json:"posy"`
	PosZ int `json:"posz"`
}

// DisplayLabel returns the location's presentation label: the full path name
// when present, then the display name, then the bare name.
func (l *Location) DisplayLabel() string {
	if l == nil {
		return ""
	}
	if l.CompleteName != "" {
		return l.CompleteName
	}
	if l.DisplayName != "" {
		return l.DisplayName
	}
	return l.Name
}
