package view

// Page carries what every rendered page needs.
type Page struct {
	Title     string
	Flash     *Flash
	CartCount int
	RequestID string
}

type ProductCard struct {
	ID              string
	Title           string
	ImageURL        string
	ImageAlt        string
	Rating          float64
	OnSale          bool
	DiscountPercent int
	PriceLabel      string // list price
	EffectiveLabel  string // what the customer pays
}

type Section struct {
	ID        string
	Title     string
	EmptyHint string
	Products  []ProductCard
}

type Suggestion struct {
	ID    string
	Title string
}

type HomePage struct {
	Page
	Search      string
	SelectedTag string
	Sort        string
	Compact     bool
	TopTags     []string
	Suggestions []Suggestion
	Sections    []Section
	ResultCount int
}

type ProductDetailPage struct {
	Page
	ID              string
	ProductTitle    string
	Description     string
	ImageURL        string
	ImageAlt        string
	Rating          float64
	OnSale          bool
	DiscountPercent int
	PriceLabel      string
	EffectiveLabel  string
	Tags            []string
}

type CartItem struct {
	ID             string
	Title          string
	ImageURL       string
	ImageAlt       string
	Quantity       int
	OnSale         bool
	PriceLabel     string
	EffectiveLabel string
	LineTotalLabel string
}

type CartPage struct {
	Page
	Items      []CartItem
	Count      int
	TotalLabel string
}

type ContactPage struct {
	Page
	FullName string
	Subject  string
	Email    string
	Message  string
	Errors   map[string]string
}

type ErrorPage struct {
	Page
	Status  int
	Message string
}
