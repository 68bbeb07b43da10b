package listings

import "time"

// Samples returns the demo listings written by the init-data reset utility.
func Samples(now time.Time) []Listing {
	stamp := FormatTime(now)
	return []Listing{
		{
			ID:          "sample-1",
			Address:     "3 rue Soutrane, Valbonne, France",
			Price:       800,
			Description: "温馨的学生公寓，位置便利，设施齐全。靠近学校和购物中心。",
			Contact:     "example@email.com",
			RoomType:    "单人间",
			Photos:      []string{},
			CreatedAt:   stamp,
			UpdatedAt:   stamp,
		},
		{
			ID:          "sample-2",
			Address:     "15 Avenue de Cannes, Antibes, France",
			Price:       1200,
			Description: "现代化公寓，海景房，交通便利。适合学生和专业人士。",
			Contact:     "contact@example.com",
			RoomType:    "整套公寓",
			Photos:      []string{},
			CreatedAt:   stamp,
			UpdatedAt:   stamp,
		},
	}
}
