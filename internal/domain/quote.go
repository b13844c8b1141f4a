package domain

// Quote holds the fundamentals table of a single ticker as label -> display
// text. Values are pass-through from the upstream page, no numeric typing.
type Quote map[string]string

// NewsItem is one row of the quote page's news table.
type NewsItem struct {
	Date   string `json:"date"`
	Title  string `json:"title"`
	Link   string `json:"link"`
	Source string `json:"source"`
}

// ScreenerRow maps export column names to cell values. The column set is
// whatever the header row of the export response declares.
type ScreenerRow map[string]string

// TickerQuote is the full payload for one ticker: fundamentals, news and a
// chart image URL.
type TickerQuote struct {
	Ticker   string     `json:"ticker"`
	Quote    Quote      `json:"quote"`
	News     []NewsItem `json:"news"`
	ChartURL string     `json:"chart_url"`
}

// ArticleSummary is the result of summarizing a news article on demand.
// Nothing is cached; every request recomputes it.
type ArticleSummary struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	SummaryEN   string   `json:"summary_en"`
	SummaryZH   string   `json:"summary_zh"`
	Authors     []string `json:"authors"`
	PublishedAt string   `json:"publish_date,omitempty"`
}
