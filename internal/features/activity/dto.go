package activity

import "time"

type GetActivityRequest struct {
	Limit      int        `form:"limit"      json:"limit"`
	Offset     int        `form:"offset"     json:"offset"`
	BeforeDate *time.Time `form:"beforeDate" json:"beforeDate"`
}

type GetActivityResponse struct {
	Entries []*ActivityLog `json:"entries"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}
