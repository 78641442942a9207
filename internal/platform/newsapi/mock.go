package newsapi

import "strings"

func mockArticles() []Article {
	return []Article{
		{
			Source:      ArticleSource{ID: "associated-press", Name: "Associated Press"},
			Author:      "AP Health Desk",
			Title:       "Medicare expands home health coverage for rural patients",
			Description: "New rules change how home health agencies are paid in rural counties.",
			URL:         "https://apnews.com/article/medicare-home-health",
			PublishedAt: "2024-03-04T14:30:00Z",
		},
		{
			Source:      ArticleSource{ID: "cnn", Name: "CNN"},
			Author:      "Health Staff",
			Title:       "Hospice quality scores rise nationwide",
			Description: "Hospice visits when death is imminent improved in most states.",
			URL:         "https://www.cnn.com/health/hospice-quality",
			PublishedAt: "2024-03-03T09:00:00Z",
		},
		{
			Source:      ArticleSource{ID: "associated-press", Name: "Associated Press"},
			Author:      "AP Health Desk",
			Title:       "Hospitals report lower heart attack payments",
			Description: "Payments for heart attack patients fell below the national average.",
			URL:         "https://apnews.com/article/hospital-payments",
			PublishedAt: "2024-03-02T18:15:00Z",
		},
		{
			Source:      ArticleSource{ID: "reuters", Name: "Reuters"},
			Author:      "Reuters Staff",
			Title:       "Flu shot uptake among home health patients",
			Description: "Agencies checked more patients for flu vaccination this season.",
			URL:         "https://www.reuters.com/business/healthcare/flu-shot",
			PublishedAt: "2024-03-01T11:45:00Z",
		},
	}
}

func mockSearch(query string) []Article {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Article
	for _, a := range mockArticles() {
		if strings.Contains(strings.ToLower(a.Title), q) || strings.Contains(strings.ToLower(a.Description), q) {
			out = append(out, a)
		}
	}
	return out
}

func mockSources() []Source {
	return []Source{
		{ID: "associated-press", Name: "Associated Press", Category: "general", Language: "en", Country: "us"},
		{ID: "cnn", Name: "CNN", Category: "general", Language: "en", Country: "us"},
		{ID: "reuters", Name: "Reuters", Category: "general", Language: "en", Country: "us"},
	}
}
