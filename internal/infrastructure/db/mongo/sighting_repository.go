package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/core/domain"
	"github.com/pamelashiell-afk/finlay-bear-tracker/internal/pkg/metrics"
)

const collectionSightings = "sightings"

type SightingRepository struct {
	col *mongo.Collection
}

func NewSightingRepository(db *mongo.Database) *SightingRepository {
	return &SightingRepository{col: db.Collection(collectionSightings)}
}

// sightingDoc is the stored shape of a sighting. Coordinates and timestamp
// are kept raw: documents written by older clients may carry strings or
// nothing at all there.
type sightingDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	BearID    string             `bson:"bear_id"`
	City      string             `bson:"city"`
	Country   string             `bson:"country"`
	Message   string             `bson:"message,omitempty"`
	Latitude  bson.RawValue      `bson:"latitude"`
	Longitude bson.RawValue      `bson:"longitude"`
	CreatedAt bson.RawValue      `bson:"created_at"`
}

func (d *sightingDoc) toDomain() domain.Sighting {
	s := domain.Sighting{
		ID:      d.ID.Hex(),
		BearID:  d.BearID,
		Place:   domain.Place{City: d.City, Country: d.Country},
		Message: d.Message,
	}
	lat, latOK := number(d.Latitude)
	lng, lngOK := number(d.Longitude)
	if latOK && lngOK {
		loc := domain.Coordinates{Lat: lat, Lng: lng}
		if loc.Valid() {
			s.Location = &loc
		}
	}
	if ts, ok := d.CreatedAt.TimeOK(); ok {
		ts = ts.UTC()
		s.CreatedAt = &ts
	}
	return s
}

func number(v bson.RawValue) (float64, bool) {
	if f, ok := v.DoubleOK(); ok {
		return f, true
	}
	if i, ok := v.Int32OK(); ok {
		return float64(i), true
	}
	if i, ok := v.Int64OK(); ok {
		return float64(i), true
	}
	return 0, false
}

// Insert stores a sighting and lets the server stamp created_at. The write is
// an upsert on a fresh id so that $currentDate can be applied, followed by a
// read of the stored document.
func (r *SightingRepository) Insert(ctx context.Context, s *domain.Sighting) (*domain.Sighting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	fields := bson.M{
		"bear_id": s.BearID,
		"city":    s.Place.City,
		"country": s.Place.Country,
	}
	if s.Message != "" {
		fields["message"] = s.Message
	}
	if s.Location != nil {
		fields["latitude"] = s.Location.Lat
		fields["longitude"] = s.Location.Lng
	}

	id := primitive.NewObjectID()
	update := bson.M{
		"$setOnInsert": fields,
		"$currentDate": bson.M{"created_at": bson.M{"$type": "date"}},
	}
	if _, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true)); err != nil {
		return nil, storeErr("insert_sighting", err)
	}

	var doc sightingDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, storeErr("read_sighting", err)
	}
	stored := doc.toDomain()
	return &stored, nil
}

// ListByBear returns the bear's sightings ordered by created_at, with the
// document id as tie breaker. Documents that cannot be decoded are skipped.
func (r *SightingRepository) ListByBear(ctx context.Context, bearID string, order domain.SortOrder) ([]domain.Sighting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	dir := 1
	if order == domain.NewestFirst {
		dir = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: dir}, {Key: "_id", Value: dir}})

	cursor, err := r.col.Find(ctx, bson.M{"bear_id": bearID}, opts)
	if err != nil {
		return nil, storeErr("list_sightings", err)
	}
	defer cursor.Close(ctx)

	sightings := make([]domain.Sighting, 0)
	for cursor.Next(ctx) {
		var doc sightingDoc
		if err := cursor.Decode(&doc); err != nil {
			metrics.MalformedSightingsTotal.Inc()
			continue
		}
		sightings = append(sightings, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, storeErr("list_sightings", err)
	}
	return sightings, nil
}

// EnsureIndexes creates the journey query index.
func (r *SightingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "bear_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
