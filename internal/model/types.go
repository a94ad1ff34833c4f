package model

// Brand carries the restaurant's identity and hero copy.
type Brand struct {
	Name     string `yaml:"name"`
	Subtitle string `yaml:"subtitle"`
	Tagline  string `yaml:"tagline"`
	Headline string `yaml:"headline"`
	Accent   string `yaml:"accent"`
	Pitch    string `yaml:"pitch"`
}

// About is the heritage section. Body is markdown.
type About struct {
	Eyebrow string `yaml:"eyebrow"`
	Title   string `yaml:"title"`
	Body    string `yaml:"body"`
	Quote   string `yaml:"quote"`
}

// MenuCategory is one showcase card.
type MenuCategory struct {
	Title       string `yaml:"title"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
}

// Menu is the signature collections section.
type Menu struct {
	Eyebrow    string         `yaml:"eyebrow"`
	Title      string         `yaml:"title"`
	Categories []MenuCategory `yaml:"categories"`
	Note       string         `yaml:"note"`
	FullMenu   string         `yaml:"full_menu_url"`
}

// GalleryImage is a catalog entry as described in the content file.
type GalleryImage struct {
	URL   string `yaml:"url"`
	Title string `yaml:"title"`
}

// GallerySection is the photo grid.
type GallerySection struct {
	Eyebrow string         `yaml:"eyebrow"`
	Title   string         `yaml:"title"`
	Blurb   string         `yaml:"blurb"`
	Images  []GalleryImage `yaml:"images"`
}

// OrderLink is an outbound ordering platform.
type OrderLink struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
}

// Order is the order-online section.
type Order struct {
	Title string      `yaml:"title"`
	Blurb string      `yaml:"blurb"`
	Links []OrderLink `yaml:"links"`
}

// Review is a guest testimonial.
type Review struct {
	Name    string `yaml:"name"`
	Rating  int    `yaml:"rating"`
	Comment string `yaml:"comment"`
}

// Reviews is the testimonials section.
type Reviews struct {
	Eyebrow string   `yaml:"eyebrow"`
	Title   string   `yaml:"title"`
	Items   []Review `yaml:"items"`
}

// Booking is the static copy around the reservation form.
type Booking struct {
	Eyebrow      string `yaml:"eyebrow"`
	Title        string `yaml:"title"`
	Blurb        string `yaml:"blurb"`
	Phone        string `yaml:"phone"`
	Hours        string `yaml:"hours"`
	SuccessTitle string `yaml:"success_title"`
	SuccessBody  string `yaml:"success_body"`
}

// Location is the find-us section and footer address.
type Location struct {
	Title   string   `yaml:"title"`
	Blurb   string   `yaml:"blurb"`
	Address []string `yaml:"address"`
	MapURL  string   `yaml:"map_url"`
}

// Footer is the closing band.
type Footer struct {
	Mission   string   `yaml:"mission"`
	Copyright string   `yaml:"copyright"`
	Badges    []string `yaml:"badges"`
}

// Content is everything the page renders.
type Content struct {
	Brand    Brand          `yaml:"brand"`
	About    About          `yaml:"about"`
	Menu     Menu           `yaml:"menu"`
	Gallery  GallerySection `yaml:"gallery"`
	Order    Order          `yaml:"order"`
	Reviews  Reviews        `yaml:"reviews"`
	Booking  Booking        `yaml:"booking"`
	Location Location       `yaml:"location"`
	Footer   Footer         `yaml:"footer"`
}
