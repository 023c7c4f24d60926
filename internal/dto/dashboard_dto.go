package dto

type WeeklyTrendResponse struct {
	Day               string `json:"day"`
	Workers           int    `json:"workers"`
	Documents         int    `json:"documents"`
	DocumentsUploaded int    `json:"documentsUploaded"`
	Date              string `json:"date"`
}

type MonthlyTrendResponse struct {
	Week              string `json:"week"`
	Workers           int    `json:"workers"`
	Documents         int    `json:"documents"`
	DocumentsUploaded int    `json:"documentsUploaded"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
}

type ActivityStatsResponse struct {
	Workers   WorkerActivity   `json:"workers"`
	Documents DocumentActivity `json:"documents"`
}

type WorkerActivity struct {
	Active24h int `json:"active_24h"`
	Active7d  int `json:"active_7d"`
	Active30d int `json:"active_30d"`
}

type DocumentActivity struct {
	Processed24h int `json:"processed_24h"`
	Processed7d  int `json:"processed_7d"`
	Processed30d int `json:"processed_30d"`
	Uploaded24h  int `json:"uploaded_24h"`
	Uploaded7d   int `json:"uploaded_7d"`
	Uploaded30d  int `json:"uploaded_30d"`
}

type DashboardStatsResponse struct {
	Workers   DashboardWorkerStats   `json:"workers"`
	Clients   DashboardClientStats   `json:"clients"`
	Documents DashboardDocumentStats `json:"documents"`
}

type DashboardWorkerStats struct {
	Total             int            `json:"total"`
	Available         int            `json:"available"`
	Online            int            `json:"online"`
	Verified          int            `json:"verified"`
	NotVerified       int            `json:"notVerified"`
	ByCategory        map[string]int `json:"byCategory"`
	DocumentsComplete int            `json:"documentsComplete"`
}

type DashboardClientStats struct {
	Total int `json:"total"`
}

type DashboardDocumentStats struct {
	PendingTotal  int            `json:"pendingTotal"`
	PendingByType PendingByTypes `json:"pendingByType"`
}

type PendingByTypes struct {
	HojaDeVida             int `json:"hojaDeVida"`
	AntecedentesJudiciales int `json:"antecedentesJudiciales"`
	Titulos                int `json:"titulos"`
	CartasRecomendacion    int `json:"cartasRecomendacion"`
}
