package users

import (
	"context"
	"os"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/features/users/user/dto"
	"rumahmengaji_backend/internals/features/users/user/model"
	"rumahmengaji_backend/internals/features/users/user/service"
)

type UserSeed struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone"`
	Role     string  `json:"role"`
}

// SeedUsersFromJSON: email yang sudah ada dilewati. Mengembalikan jumlah insert.
func SeedUsersFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	zap.L().Info("📥 membaca file user", zap.String("file", filePath))

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, errors.Wrap(err, "read user seed file")
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, errors.Wrap(err, "decode user seed file")
	}

	svc := service.NewUserService(db)
	inserted := 0
	for _, data := range inputs {
		var n int64
		if err := db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", data.Email).Count(&n).Error; err != nil {
			return inserted, errors.Wrap(err, "check existing user")
		}
		if n > 0 {
			zap.L().Info("user sudah ada, dilewati", zap.String("email", data.Email))
			continue
		}

		_, err := svc.Create(ctx, dto.CreateUserRequest{
			Email:    data.Email,
			Password: data.Password,
			FullName: data.FullName,
			Phone:    data.Phone,
			Role:     data.Role,
		})
		if err != nil {
			zap.L().Warn("❌ gagal insert user", zap.String("email", data.Email), zap.Error(err))
			continue
		}
		inserted++
		zap.L().Info("✅ user ditambahkan", zap.String("email", data.Email))
	}
	return inserted, nil
}
