package dto

type SendBannerRequest struct {
	Content string `json:"content" validate:"required"`
}

// BannerFormField describes one input of the banner form so a client
// can render it.
type BannerFormField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Widget   string `json:"widget"`
	Required bool   `json:"required"`
}

type BannerFormResponse struct {
	Title  string            `json:"title"`
	Fields []BannerFormField `json:"fields"`
}
