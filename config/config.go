package config

import "time"

// Config is the immutable run configuration passed into both pipelines.
type Config struct {
	Listing    ListingConfig    `yaml:"listing"`
	Article    ArticleConfig    `yaml:"article"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Prompts    PromptConfig     `yaml:"prompts"`
	Storage    StorageConfig    `yaml:"storage"`
	HTTP       HTTPConfig       `yaml:"http"`
	Logging    LoggingConfig    `yaml:"logging"`
	API        APIConfig        `yaml:"api"`
}

// ListingConfig describes where article URLs are collected from.
type ListingConfig struct {
	Type       string `yaml:"type"` // "api" or "feed"
	BaseURL    string `yaml:"base_url"`
	FeedURL    string `yaml:"feed_url,omitempty"`
	Host       string `yaml:"host"`
	CategoryID int    `yaml:"category_id"`
	Pages      int    `yaml:"pages"`
	PageSize   int    `yaml:"page_size"`
}

// ArticleConfig holds the selectors that locate the title and body on an
// article page.
type ArticleConfig struct {
	TitleSelector   string `yaml:"title_selector"`
	ContentSelector string `yaml:"content_selector"`
}

// ClassifierConfig is the fixed generation bundle sent with every prompt.
type ClassifierConfig struct {
	Backend         string          `yaml:"backend"` // "gemini" or "ollama"
	Model           string          `yaml:"model"`
	APIKey          string          `yaml:"api_key,omitempty"`
	OllamaHost      string          `yaml:"ollama_host,omitempty"`
	Temperature     float32         `yaml:"temperature"`
	CandidateCount  int32           `yaml:"candidate_count"`
	TopK            int32           `yaml:"top_k"`
	TopP            float32         `yaml:"top_p"`
	MaxOutputTokens int32           `yaml:"max_output_tokens"`
	StopSequences   []string        `yaml:"stop_sequences"`
	SafetySettings  []SafetySetting `yaml:"safety_settings"`
}

// SafetySetting pairs a harm category with a block threshold (0-4, where 4
// blocks nothing).
type SafetySetting struct {
	Category  string `yaml:"category"`
	Threshold int    `yaml:"threshold"`
}

// PromptConfig holds the prompt template and the three questions asked by
// the classifier. Template is a text/template with .Title, .Content and
// .Question.
type PromptConfig struct {
	Template         string `yaml:"template"`
	MainQuestion     string `yaml:"main_question"`
	PositiveQuestion string `yaml:"positive_question"`
	NegativeQuestion string `yaml:"negative_question"`
}

// StorageConfig selects the backing store for the URL list and results.
type StorageConfig struct {
	URLs    StoreConfig `yaml:"urls"`
	Results StoreConfig `yaml:"results"`
}

// StoreConfig is a store type plus its data source name (a file path for
// both csv and sqlite).
type StoreConfig struct {
	Type string `yaml:"type"`
	DSN  string `yaml:"dsn"`
}

// HTTPConfig configures the outbound HTTP client. A zero Timeout leaves the
// transport default in place.
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// LoggingConfig configures the diagnostic logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// APIConfig configures the results API server.
type APIConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Listing: ListingConfig{
			Type:       "api",
			BaseURL:    "https://api.example.com/post",
			Host:       "https://example.com/",
			CategoryID: 2,
			Pages:      2,
			PageSize:   50,
		},
		Article: ArticleConfig{
			TitleSelector:   "h1.top_stories_header_news",
			ContentSelector: "div.new_details",
		},
		Classifier: ClassifierConfig{
			Backend:         "gemini",
			Model:           "gemini-1.5-flash",
			OllamaHost:      "http://localhost:11434",
			Temperature:     0.75,
			CandidateCount:  1,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 512,
			StopSequences:   []string{},
			SafetySettings: []SafetySetting{
				{Category: "HARM_CATEGORY_DEROGATORY", Threshold: 4},
				{Category: "HARM_CATEGORY_TOXICITY", Threshold: 4},
				{Category: "HARM_CATEGORY_VIOLENCE", Threshold: 4},
				{Category: "HARM_CATEGORY_SEXUAL", Threshold: 4},
				{Category: "HARM_CATEGORY_MEDICAL", Threshold: 4},
				{Category: "HARM_CATEGORY_DANGEROUS", Threshold: 4},
			},
		},
		Prompts: DefaultPrompts(),
		Storage: StorageConfig{
			URLs:    StoreConfig{Type: "csv", DSN: "news_url_list.csv"},
			Results: StoreConfig{Type: "csv", DSN: "result.csv"},
		},
		HTTP: HTTPConfig{
			UserAgent: "newspulse/1.0",
		},
		Logging: LoggingConfig{Level: "info"},
		API:     APIConfig{Addr: "localhost:8080"},
	}
}
