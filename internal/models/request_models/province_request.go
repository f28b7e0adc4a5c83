package request_models

type ProvinceCreateRequest struct {
	Name string `json:"name"`
}
