package response

type Location struct {
	ID      int64  `json:"location_id"`
	Name    string `json:"location_name"`
	Address string `json:"address"`
}
