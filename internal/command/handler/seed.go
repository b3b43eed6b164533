package handler

import (
	"context"

	"github.com/zungle102/shiftrec-sub000/internal/database/mongodb/model"
	"github.com/zungle102/shiftrec-sub000/internal/database/mongodb/repository"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// 示範帳號；--owner 可覆寫
const defaultSeedOwnerEmail = "demo@example.com"

var defaultClientTypeNames = []string{"NDIS", "Private", "Aged Care", "Brokerage"}

type SeedHandler struct {
	logger               *zap.Logger
	ownerRepository      *repository.OwnerRepository
	clientTypeRepository *repository.ClientTypeRepository
}

func NewSeedHandler(
	logger *zap.Logger,
	ownerRepository *repository.OwnerRepository,
	clientTypeRepository *repository.ClientTypeRepository,
) *SeedHandler {
	return &SeedHandler{
		logger:               logger,
		ownerRepository:      ownerRepository,
		clientTypeRepository: clientTypeRepository,
	}
}

func (handler *SeedHandler) Seed(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	ownerEmail := defaultSeedOwnerEmail
	if len(args) > 0 && args[0] != "" {
		ownerEmail = args[0]
	}

	if _, err := handler.ownerRepository.Create(ctx, &model.Owner{
		Email:        ownerEmail,
		BusinessName: "Demo Care Services",
		Active:       true,
	}); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			handler.logger.Error("seed owner failed", zap.Error(err))
			cmd.PrintErrln("seed owner failed:", err)
			return
		}
		cmd.Println("owner already exists:", ownerEmail)
	} else {
		cmd.Println("owner created:", ownerEmail)
	}

	for _, name := range defaultClientTypeNames {
		if _, err := handler.clientTypeRepository.Create(ctx, &model.ClientType{
			OwnerEmail: ownerEmail,
			Name:       name,
		}); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			handler.logger.Error("seed client type failed", zap.String("name", name), zap.Error(err))
			cmd.PrintErrln("seed client type failed:", err)
			return
		}
	}
	cmd.Println("default client types ready")
}
