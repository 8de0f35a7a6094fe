package service

import (
	"rumahmengaji_backend/internals/features/school/classes/model"
	"rumahmengaji_backend/internals/helpers/dbtime"
)

// Overlaps: [s1,e1) dan [s2,e2) beririsan. Kelas yang bersambung
// (e1 == s2) tidak dianggap bentrok.
func Overlaps(s1, e1, s2, e2 dbtime.Tod) bool {
	return s1.Seconds() < e2.Seconds() && s2.Seconds() < e1.Seconds()
}

// FirstConflict mengembalikan kelas pertama di existing yang bentrok
// dengan [start, end), atau nil.
func FirstConflict(existing []model.ClassModel, start, end dbtime.Tod) *model.ClassModel {
	for i := range existing {
		c := &existing[i]
		if Overlaps(start, end, c.ClassStartTime, c.ClassEndTime) {
			return c
		}
	}
	return nil
}
