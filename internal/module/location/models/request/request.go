package request

type UpsertLocation struct {
	Name    string `json:"location_name" validate:"required,max=100"`
	Address string `json:"address" validate:"max=255"`
}
