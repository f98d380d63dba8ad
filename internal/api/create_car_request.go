package api

// CreateCarRequest 新增車輛的請求內容
// 數值欄位使用指標以區分「缺欄位」與合法的 0
// swagger:model api.CreateCarRequest
type CreateCarRequest struct {
	Title    string `json:"title" validate:"required" example:"2019 Honda Civic"`
	Price    *int64 `json:"price" validate:"required,min=0" example:"18500"`
	Mileage  *int64 `json:"mileage" validate:"required,min=0" example:"42000"`
	Color    string `json:"color" validate:"required" example:"red"`
	ImageURL string `json:"image_url" validate:"required,url" example:"https://cdn.example.com/civic.jpg"`
}
