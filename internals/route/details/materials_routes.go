package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	DistributionRoute "rumahmengaji_backend/internals/features/materials/distributions/route"
	VideoRoute "rumahmengaji_backend/internals/features/materials/videos/route"
)

func MaterialsRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	VideoRoute.VideoRoutes(r, db, v)
	DistributionRoute.MaterialDistributionRoutes(r, db, v)
}
