package dbtime

import (
	"time"

	"rumahmengaji_backend/internals/configs"
)

var appLoc *time.Location

// AppLocation: zona operasional pusat (default Asia/Kuala_Lumpur).
func AppLocation() *time.Location {
	if appLoc != nil {
		return appLoc
	}
	name := configs.GetEnv("APP_TIMEZONE", "Asia/Kuala_Lumpur")
	if loc, err := time.LoadLocation(name); err == nil {
		appLoc = loc
		return loc
	}
	// fallback tanpa tzdata: UTC+8
	appLoc = time.FixedZone("MYT", 8*60*60)
	return appLoc
}

// Today = tanggal hari ini menurut zona pusat.
func Today() Date {
	return DateOf(time.Now().In(AppLocation()))
}
