package newsapi

// Article is an article as returned by NewsAPI. PublishedAt is left as the
// upstream string; callers decide how to treat unparseable timestamps.
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	PublishedAt string        `json:"publishedAt"`
}

type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Source is a news outlet from /v2/sources.
type Source struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Language    string `json:"language"`
	Country     string `json:"country"`
}

type statusPayload interface {
	status() (status, code, message string)
}

type errorBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e errorBody) status() (string, string, string) { return e.Status, e.Code, e.Message }

type articlesResponse struct {
	errorBody
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

type sourcesResponse struct {
	errorBody
	Sources []Source `json:"sources"`
}
