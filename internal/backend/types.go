package backend

// ProductImage is an image reference as stored by the backend.
type ProductImage struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

type Product struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	ShortDescription    string         `json:"short_description"`
	Category            string         `json:"category"`
	Subcategory         string         `json:"subcategory"`
	Gender              string         `json:"gender,omitempty"`
	AgeGroup            string         `json:"age_group,omitempty"`
	Images              []ProductImage `json:"images"`
	Fabric              string         `json:"fabric"`
	PrimaryColor        string         `json:"primary_color"`
	AvailableColors     []string       `json:"available_colors"`
	Sizes               []string       `json:"sizes"`
	Price               float64        `json:"price"`
	Description         string         `json:"description,omitempty"`
	IsNewArrival        bool           `json:"is_new_arrival"`
	ShowInFreshArrivals bool           `json:"show_in_fresh_arrivals"`
}

// ProductPayload is the body of a create or update call. Images carry only the
// url and primary flag; encoded content never leaves the wizard.
type ProductPayload struct {
	Name                string         `json:"name" validate:"required"`
	ShortDescription    string         `json:"short_description" validate:"required"`
	Description         string         `json:"description" validate:"required"`
	Category            string         `json:"category,omitempty"`
	Subcategory         string         `json:"subcategory,omitempty"`
	Gender              string         `json:"gender,omitempty"`
	AgeGroup            string         `json:"age_group,omitempty"`
	Fabric              string         `json:"fabric" validate:"required"`
	PrimaryColor        string         `json:"primary_color" validate:"required"`
	AvailableColors     []string       `json:"available_colors"`
	Sizes               []string       `json:"sizes" validate:"min=1,dive,required"`
	Price               float64        `json:"price" validate:"gt=0"`
	IsNewArrival        bool           `json:"is_new_arrival"`
	ShowInFreshArrivals bool           `json:"show_in_fresh_arrivals"`
	Images              []ProductImage `json:"images" validate:"min=2,max=10,dive"`
}

// UploadedImage is the answer of POST /api/upload-image.
type UploadedImage struct {
	URL    string `json:"image_url"`
	Base64 string `json:"image_base64"`
}

type DescriptionRequest struct {
	ItemName         string
	ShortDescription string
	Category         string
	Subcategory      string
	Fabric           string
}

type SizeOptions struct {
	Letters []string `json:"letters"`
	Numbers []string `json:"numbers"`
}

type Review struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
	Review   string `json:"review"`
	Location string `json:"location"`
}

type PublicReview struct {
	Name   string `json:"name" validate:"required,max=100"`
	Review string `json:"review" validate:"required,max=2000"`
}

type Feedback struct {
	Name    string `json:"name" validate:"required,max=100"`
	Message string `json:"message" validate:"required,max=2000"`
}

// EnquiryItem is one cart entry as the enquiry endpoint reads it.
type EnquiryItem struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	ShortDescription string  `json:"short_description,omitempty"`
	SelectedSize     string  `json:"selectedSize,omitempty"`
	SelectedColor    string  `json:"selectedColor,omitempty"`
}

// Outreach is what feedback and enquiry calls answer with.
type Outreach struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}
