package site

// SearchProvider selects the external search subsystem.
type SearchProvider string

const (
	SearchLocal   SearchProvider = "local"
	SearchAlgolia SearchProvider = "algolia"
)

// Search is forwarded to the search subsystem; docsite neither indexes nor queries.
type Search struct {
	Provider SearchProvider `yaml:"provider" json:"provider"`
	// Locales maps a locale key ("root" for the default locale) to its labels.
	Locales map[string]SearchTranslations `yaml:"locales,omitempty" json:"locales,omitempty"`
	Algolia *Algolia                      `yaml:"algolia,omitempty" json:"algolia,omitempty"`
}

// Algolia holds the hosted search credentials (search-only key).
type Algolia struct {
	AppID     string `yaml:"app_id" json:"appId"`
	APIKey    string `yaml:"api_key" json:"apiKey"`
	IndexName string `yaml:"index_name" json:"indexName"`
}

// SearchTranslations are the labels of the search button and modal.
type SearchTranslations struct {
	Button SearchButton `yaml:"button" json:"button"`
	Modal  SearchModal  `yaml:"modal" json:"modal"`
}

type SearchButton struct {
	ButtonText      string `yaml:"button_text,omitempty" json:"buttonText,omitempty"`
	ButtonAriaLabel string `yaml:"button_aria_label,omitempty" json:"buttonAriaLabel,omitempty"`
}

type SearchModal struct {
	DisplayDetails   string            `yaml:"display_details,omitempty" json:"displayDetails,omitempty"`
	ResetButtonTitle string            `yaml:"reset_button_title,omitempty" json:"resetButtonTitle,omitempty"`
	BackButtonTitle  string            `yaml:"back_button_title,omitempty" json:"backButtonTitle,omitempty"`
	NoResultsText    string            `yaml:"no_results_text,omitempty" json:"noResultsText,omitempty"`
	Footer           SearchModalFooter `yaml:"footer" json:"footer"`
}

type SearchModalFooter struct {
	SelectText               string `yaml:"select_text,omitempty" json:"selectText,omitempty"`
	SelectKeyAriaLabel       string `yaml:"select_key_aria_label,omitempty" json:"selectKeyAriaLabel,omitempty"`
	NavigateText             string `yaml:"navigate_text,omitempty" json:"navigateText,omitempty"`
	NavigateUpKeyAriaLabel   string `yaml:"navigate_up_key_aria_label,omitempty" json:"navigateUpKeyAriaLabel,omitempty"`
	NavigateDownKeyAriaLabel string `yaml:"navigate_down_key_aria_label,omitempty" json:"navigateDownKeyAriaLabel,omitempty"`
	CloseText                string `yaml:"close_text,omitempty" json:"closeText,omitempty"`
	CloseKeyAriaLabel        string `yaml:"close_key_aria_label,omitempty" json:"closeKeyAriaLabel,omitempty"`
}
