package repository

import (
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/auth"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/cart"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/category"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/order"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/product"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/profile"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/servicerequest"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/postgres"
	postgresRepo "github.com/kethil/tempursarihubstore-sub000/internal/repository/postgres"
)

func NewServiceRequestRepository(db *postgres.DB, logger *logger.Logger) servicerequest.Repository {
	return postgresRepo.NewServiceRequestRepository(db, logger)
}

func NewProductRepository(db *postgres.DB, logger *logger.Logger) product.Repository {
	return postgresRepo.NewProductRepository(db, logger)
}

func NewCategoryRepository(db *postgres.DB, logger *logger.Logger) category.Repository {
	return postgresRepo.NewCategoryRepository(db, logger)
}

func NewCartRepository(db *postgres.DB, logger *logger.Logger) cart.Repository {
	return postgresRepo.NewCartRepository(db, logger)
}

func NewOrderRepository(db *postgres.DB, logger *logger.Logger) order.Repository {
	return postgresRepo.NewOrderRepository(db, logger)
}

func NewProfileRepository(db *postgres.DB, logger *logger.Logger) profile.Repository {
	return postgresRepo.NewProfileRepository(db, logger)
}

func NewAuthRepository(db *postgres.DB, logger *logger.Logger) auth.Repository {
	return postgresRepo.NewAuthRepository(db, logger)
}
