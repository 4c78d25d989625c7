package service

import (
	"context"
	"encoding/json"
	"time"

	"rehab-match/internal/domain/entity"
	"rehab-match/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Redis keys for the matching catalog snapshot
	RedisClinicianSnapshotKey = "snapshot:clinicians"
	RedisTimeslotSnapshotKey  = "snapshot:timeslots"
)

// SnapshotCacheService caches the clinician and timeslot catalog in Redis so
// recommendation and optimization requests do not hit PostgreSQL on every call.
//
// The cache is strictly best-effort: any Redis failure falls through to the
// database, and mutations on the catalog invalidate the snapshot keys so the
// next read repopulates them.
type SnapshotCacheService struct {
	db            *gorm.DB
	redisClient   *redis.Client
	log           *logrus.Logger
	clinicianRepo repository.ClinicianRepository
	timeslotRepo  repository.TimeslotRepository
	ttl           time.Duration
}

func NewSnapshotCacheService(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	clinicianRepo repository.ClinicianRepository,
	timeslotRepo repository.TimeslotRepository,
	ttl time.Duration,
) *SnapshotCacheService {
	return &SnapshotCacheService{
		db:            db,
		redisClient:   redisClient,
		log:           log,
		clinicianRepo: clinicianRepo,
		timeslotRepo:  timeslotRepo,
		ttl:           ttl,
	}
}

// GetClinicians returns the full clinician catalog, served from Redis when a
// fresh snapshot exists and from PostgreSQL otherwise.
func (s *SnapshotCacheService) GetClinicians(ctx context.Context) ([]entity.Clinician, error) {
	var cached []entity.Clinician
	if s.readSnapshot(ctx, RedisClinicianSnapshotKey, &cached) {
		return cached, nil
	}

	clinicians, err := s.clinicianRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	s.writeSnapshot(ctx, RedisClinicianSnapshotKey, clinicians)
	return clinicians, nil
}

// GetTimeslots returns the full timeslot catalog ordered by time index,
// served from Redis when a fresh snapshot exists and from PostgreSQL otherwise.
func (s *SnapshotCacheService) GetTimeslots(ctx context.Context) ([]entity.Timeslot, error) {
	var cached []entity.Timeslot
	if s.readSnapshot(ctx, RedisTimeslotSnapshotKey, &cached) {
		return cached, nil
	}

	timeslots, err := s.timeslotRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	s.writeSnapshot(ctx, RedisTimeslotSnapshotKey, timeslots)
	return timeslots, nil
}

// InvalidateClinicians drops the clinician snapshot after a catalog mutation.
func (s *SnapshotCacheService) InvalidateClinicians(ctx context.Context) {
	s.invalidate(ctx, RedisClinicianSnapshotKey)
}

// InvalidateTimeslots drops the timeslot snapshot after a catalog mutation.
func (s *SnapshotCacheService) InvalidateTimeslots(ctx context.Context) {
	s.invalidate(ctx, RedisTimeslotSnapshotKey)
}

// readSnapshot reports whether a usable snapshot was decoded into dest.
// Cache misses and Redis failures both return false; the caller falls back
// to the database either way.
func (s *SnapshotCacheService) readSnapshot(ctx context.Context, key string, dest interface{}) bool {
	payload, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read snapshot %s from Redis: %+v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		s.log.Warnf("Failed to decode snapshot %s, invalidating: %+v", key, err)
		s.invalidate(ctx, key)
		return false
	}

	return true
}

// writeSnapshot stores the catalog in Redis. Failures are logged and
// swallowed so a degraded cache never fails a read path.
func (s *SnapshotCacheService) writeSnapshot(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.log.Warnf("Failed to encode snapshot %s: %+v", key, err)
		return
	}

	if err := s.redisClient.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write snapshot %s to Redis: %+v", key, err)
		return
	}

	s.log.Debugf("Refreshed snapshot %s (TTL=%v)", key, s.ttl)
}

func (s *SnapshotCacheService) invalidate(ctx context.Context, key string) {
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.log.Warnf("Failed to invalidate snapshot %s: %+v", key, err)
		return
	}
	s.log.Debugf("Invalidated snapshot %s", key)
}
