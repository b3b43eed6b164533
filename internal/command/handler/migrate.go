package handler

import (
	"context"

	"github.com/zungle102/shiftrec-sub000/internal/core"
	client "github.com/zungle102/shiftrec-sub000/internal/database/client"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MigrateHandler 把舊欄位名寫回新欄位，供升級後的 API 直接讀取：
//
//	shifts:  teamMemberId → assignedStaffMemberId
//	         notifiedTeamMemberIds → notifiedStaffMemberIds
//	clients: clientType → clientTypeId
type MigrateHandler struct {
	logger      *zap.Logger
	mongoClient *client.MongoClient
}

func NewMigrateHandler(logger *zap.Logger, mongoClient *client.MongoClient) *MigrateHandler {
	return &MigrateHandler{logger: logger, mongoClient: mongoClient}
}

func (handler *MigrateHandler) Migrate(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	database := handler.mongoClient.Client().Database(string(core.MongoDBShiftrec))
	shifts := database.Collection(string(core.MongoCollectionShifts))
	clients := database.Collection(string(core.MongoCollectionClients))

	steps := []struct {
		name       string
		collection *mongo.Collection
		filter     bson.M
		update     bson.M
	}{
		{
			name:       "shifts.teamMemberId",
			collection: shifts,
			filter:     bson.M{"teamMemberId": bson.M{"$exists": true}, "assignedStaffMemberId": bson.M{"$exists": false}},
			update:     bson.M{"$rename": bson.M{"teamMemberId": "assignedStaffMemberId"}},
		},
		{
			name:       "shifts.notifiedTeamMemberIds",
			collection: shifts,
			filter:     bson.M{"notifiedTeamMemberIds": bson.M{"$exists": true}, "notifiedStaffMemberIds": bson.M{"$exists": false}},
			update:     bson.M{"$rename": bson.M{"notifiedTeamMemberIds": "notifiedStaffMemberIds"}},
		},
		{
			name:       "shifts.breakDuration",
			collection: shifts,
			filter:     bson.M{"breakDuration": bson.M{"$exists": false}},
			update:     bson.M{"$set": bson.M{"breakDuration": 0}},
		},
		{
			name:       "clients.clientType",
			collection: clients,
			filter:     bson.M{"clientType": bson.M{"$exists": true}, "clientTypeId": bson.M{"$exists": false}},
			update:     bson.M{"$rename": bson.M{"clientType": "clientTypeId"}},
		},
	}

	for _, step := range steps {
		result, err := step.collection.UpdateMany(ctx, step.filter, step.update)
		if err != nil {
			handler.logger.Error("migration step failed", zap.String("step", step.name), zap.Error(err))
			cmd.PrintErrln("migration step failed:", step.name, err)
			return
		}
		handler.logger.Info("migration step done",
			zap.String("step", step.name),
			zap.Int64("matched", result.MatchedCount),
			zap.Int64("modified", result.ModifiedCount),
		)
		cmd.Printf("%s: %d documents updated\n", step.name, result.ModifiedCount)
	}
	cmd.Println("migration complete")
}
