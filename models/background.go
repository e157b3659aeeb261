package models

// BackgroundPresets are the folder backgrounds offered by the client. Any
// free-form CSS color or gradient token is accepted on write; these are just
// the curated choices.
type BackgroundPresets struct {
	Gradients []string `json:"gradients"`
	Colors    []string `json:"colors"`
}

// DefaultBackgroundPresets returns the built-in palette.
func DefaultBackgroundPresets() BackgroundPresets {
	return BackgroundPresets{
		Gradients: []string{
			"linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
			"linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
			"linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)",
			"linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)",
			"linear-gradient(135deg, #fa709a 0%, #fee140 100%)",
			"linear-gradient(135deg, #30cfd0 0%, #330867 100%)",
			"linear-gradient(135deg, #a8edea 0%, #fed6e3 100%)",
			"linear-gradient(135deg, #ff9a9e 0%, #fecfef 100%)",
			"linear-gradient(135deg, #ffecd2 0%, #fcb69f 100%)",
			"linear-gradient(135deg, #ff6e7f 0%, #bfe9ff 100%)",
			"linear-gradient(135deg, #e0c3fc 0%, #8ec5fc 100%)",
			"linear-gradient(135deg, #f8ceec 0%, #a88beb 100%)",
		},
		Colors: []string{
			"#ffffff", "#f3f4f6", "#e5e7eb", "#dbeafe", "#fef3c7",
			"#fee2e2", "#fce7f3", "#e0e7ff", "#d1fae5", "#cffafe",
		},
	}
}
