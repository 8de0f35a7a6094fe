package study_centers

import (
	"context"
	"os"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/lembaga/study_centers/dto"
	centerModel "rumahmengaji_backend/internals/features/lembaga/study_centers/model"
	"rumahmengaji_backend/internals/features/lembaga/study_centers/service"
	userModel "rumahmengaji_backend/internals/features/users/user/model"
)

// Admin dirujuk lewat email supaya file seed tidak tergantung ID.
type StudyCenterSeed struct {
	Name               string  `json:"name"`
	Address            string  `json:"address"`
	Phone              *string `json:"phone"`
	Email              *string `json:"email"`
	RegistrationNumber *string `json:"registration_number"`
	AdminEmail         string  `json:"admin_email"`
}

func SeedStudyCentersFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	zap.L().Info("📥 membaca file pusat", zap.String("file", filePath))

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, errors.Wrap(err, "read study center seed file")
	}

	var inputs []StudyCenterSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, errors.Wrap(err, "decode study center seed file")
	}

	svc := service.NewStudyCenterService(db)
	inserted := 0
	for _, data := range inputs {
		var n int64
		if err := db.WithContext(ctx).Model(&centerModel.StudyCenterModel{}).
			Where("study_center_name = ?", data.Name).Count(&n).Error; err != nil {
			return inserted, errors.Wrap(err, "check existing study center")
		}
		if n > 0 {
			zap.L().Info("pusat sudah ada, dilewati", zap.String("name", data.Name))
			continue
		}

		var admin userModel.UserModel
		if err := db.WithContext(ctx).Where("email = ?", data.AdminEmail).First(&admin).Error; err != nil {
			zap.L().Warn("admin pusat tidak ditemukan", zap.String("admin_email", data.AdminEmail), zap.Error(err))
			continue
		}

		_, err := svc.Create(ctx, dto.CreateStudyCenterRequest{
			Name:               data.Name,
			Address:            data.Address,
			Phone:              data.Phone,
			Email:              data.Email,
			RegistrationNumber: data.RegistrationNumber,
			AdminID:            admin.ID,
		})
		if err != nil {
			zap.L().Warn("❌ gagal insert pusat", zap.String("name", data.Name), zap.Error(err))
			continue
		}
		inserted++
		zap.L().Info("✅ pusat ditambahkan", zap.String("name", data.Name))
	}
	return inserted, nil
}
