package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BartekS5/finess/internal/etl"
	"github.com/BartekS5/finess/pkg/database"
	"github.com/BartekS5/finess/pkg/logger"
	"github.com/BartekS5/finess/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const testDatabase = "finess_it"

func TestExtractToMongo(t *testing.T) {
	connString := os.Getenv("MONGO_CONNECTION_STRING")
	if connString == "" {
		t.Skip("MONGO_CONNECTION_STRING not set")
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, connString)
	if err != nil {
		t.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	cleanup(t, client)
	defer cleanup(t, client)

	path := writeExtract(t)

	log := logger.Discard()
	pub := etl.NewMongoPublisher(client, testDatabase, "et", log)
	pipeline := etl.NewPipeline(etl.NewLoader(log, 0), pub, false, log)

	summary, err := pipeline.Run(ctx, path)
	if err != nil {
		t.Fatalf("Pipeline execution failed: %v", err)
	}
	if summary.Published != 2 || summary.Failed != 0 || summary.Duplicates != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	// Publishing twice must upsert, not duplicate.
	if published, failed := pipeline.Publish(ctx); published != 2 || failed != 0 {
		t.Fatalf("second publish: published=%d failed=%d", published, failed)
	}

	verifyMongoData(t, client)
}

func writeExtract(t *testing.T) string {
	t.Helper()
	rows := []string{"header"}
	for _, key := range []string{"750000001", "130000002", "750000001"} {
		row := make([]string, len(models.FinessSchema()))
		row[models.ColFiness] = key
		row[models.ColName] = "CENTRE " + key
		row[models.ColAddressLine] = "75001 PARIS CEDEX 01"
		row[models.ColUpdated] = "2016-06-08"
		rows = append(rows, strings.Join(row, ";"))
	}
	path := filepath.Join(t.TempDir(), "etalab.csv")
	if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func verifyMongoData(t *testing.T, client *mongo.Client) {
	coll := client.Database(testDatabase).Collection("et")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("Failed to count documents: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 documents, got %d", n)
	}

	var result bson.M
	if err := coll.FindOne(ctx, bson.M{"_id": "750000001"}).Decode(&result); err != nil {
		t.Fatalf("Failed to find card in MongoDB: %v", err)
	}
	if result["city"] != "PARIS 01" {
		t.Errorf("Expected city PARIS 01, got %v", result["city"])
	}
	if result["cp"] != "75001" {
		t.Errorf("Expected cp 75001, got %v", result["cp"])
	}
}

func cleanup(t *testing.T, client *mongo.Client) {
	if err := client.Database(testDatabase).Drop(context.Background()); err != nil {
		t.Logf("cleanup: %v", err)
	}
}
