package dto

// TrackVisitRequest cuerpo de POST /api/track.
type TrackVisitRequest struct {
	Page     string `json:"page"`
	Referrer string `json:"referrer"`
}

// PageCountDTO visitas de una página.
type PageCountDTO struct {
	Page  string `json:"page"`
	Count int64  `json:"count"`
}

// DeviceCountDTO visitas por clase de dispositivo.
type DeviceCountDTO struct {
	Device string `json:"device"`
	Count  int64  `json:"count"`
}

// VisitStatsDTO agregado de GET /api/stats/visits.
type VisitStatsDTO struct {
	Total   int64            `json:"total"`
	Today   int64            `json:"today"`
	Pages   []PageCountDTO   `json:"pages"`
	Devices []DeviceCountDTO `json:"devices"`
}
