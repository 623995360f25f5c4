package usecase

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/internal/audiofile"
)

type songUsecase struct {
	songRepository     domain.SongRepository
	playbackRepository domain.PlaybackLogRepository
	contextTimeout     time.Duration
}

func NewSongUsecase(
	songRepository domain.SongRepository,
	playbackRepository domain.PlaybackLogRepository,
	timeout time.Duration,
) domain.SongUsecase {
	return &songUsecase{
		songRepository:     songRepository,
		playbackRepository: playbackRepository,
		contextTimeout:     timeout,
	}
}

func validateUpload(req *domain.SongUploadRequest) []domain.FieldError {
	var fields []domain.FieldError
	if req.Title == "" {
		fields = append(fields, domain.FieldError{Field: "title", Message: "is required"})
	}
	if req.Artist == "" {
		fields = append(fields, domain.FieldError{Field: "artist", Message: "is required"})
	}
	if !req.Genre.Valid() {
		fields = append(fields, domain.FieldError{Field: "genre", Message: "unknown genre"})
	}
	for _, mood := range req.MoodTags {
		if !mood.Valid() {
			fields = append(fields, domain.FieldError{Field: "moodTags", Message: "unknown mood " + string(mood)})
		}
	}
	if req.Duration <= 0 {
		fields = append(fields, domain.FieldError{Field: "duration", Message: "must be positive"})
	}
	if req.Energy < 1 || req.Energy > 10 {
		fields = append(fields, domain.FieldError{Field: "energy", Message: "must be between 1 and 10"})
	}
	if req.Valence < 1 || req.Valence > 10 {
		fields = append(fields, domain.FieldError{Field: "valence", Message: "must be between 1 and 10"})
	}
	if !req.Tempo.Valid() {
		fields = append(fields, domain.FieldError{Field: "tempo", Message: "unknown tempo"})
	}
	return fields
}

// Upload validates the stored file and its metadata; any failure after the
// file hit the disk removes the orphan before returning.
func (su *songUsecase) Upload(ctx context.Context, userID string, req *domain.SongUploadRequest) (*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, su.contextTimeout)
	defer cancel()

	oid, err := parseID(userID)
	if err != nil {
		audiofile.Cleanup(req.FilePath)
		return nil, err
	}

	if err := audiofile.ValidateContent(req.FilePath); err != nil {
		audiofile.Cleanup(req.FilePath)
		return nil, domain.NewValidationError([]domain.FieldError{{
			Field:   "file",
			Message: err.Error(),
		}})
	}

	// Embedded tags fill whatever the form left blank.
	if probe, err := audiofile.ReadTags(req.FilePath); err == nil {
		if req.Title == "" {
			req.Title = probe.Title
		}
		if req.Artist == "" {
			req.Artist = probe.Artist
		}
		if req.Album == "" {
			req.Album = probe.Album
		}
	}

	if fields := validateUpload(req); len(fields) > 0 {
		audiofile.Cleanup(req.FilePath)
		return nil, domain.NewValidationError(fields)
	}

	song := &domain.Song{
		Title:      req.Title,
		Artist:     req.Artist,
		Album:      req.Album,
		Genre:      req.Genre,
		MoodTags:   req.MoodTags,
		Language:   req.Language,
		Duration:   req.Duration,
		FilePath:   req.FilePath,
		Energy:     req.Energy,
		Valence:    req.Valence,
		Tempo:      req.Tempo,
		IsPublic:   req.IsPublic,
		UploadedBy: oid,
	}
	if err := su.songRepository.Create(ctx, song); err != nil {
		audiofile.Cleanup(req.FilePath)
		return nil, err
	}
	return song, nil
}

func (su *songUsecase) Fetch(ctx context.Context, userID string, filter domain.SongFilter) ([]domain.Song, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, su.contextTimeout)
	defer cancel()

	if userID != "" {
		oid, err := parseID(userID)
		if err != nil {
			return nil, 0, err
		}
		filter.ViewerID = oid
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	return su.songRepository.Fetch(ctx, filter)
}

func (su *songUsecase) GetByID(ctx context.Context, userID, songID string) (*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, su.contextTimeout)
	defer cancel()

	oid, err := parseID(songID)
	if err != nil {
		return nil, err
	}
	song, err := su.songRepository.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !song.IsPublic && song.UploadedBy.Hex() != userID {
		return nil, domain.NewAuthorizationError("song is private")
	}
	return song, nil
}

func (su *songUsecase) getOwned(ctx context.Context, userID, songID string) (*domain.Song, error) {
	oid, err := parseID(songID)
	if err != nil {
		return nil, err
	}
	song, err := su.songRepository.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if song.UploadedBy.Hex() != userID {
		return nil, domain.NewAuthorizationError("song belongs to another user")
	}
	return song, nil
}

func (su *songUsecase) Update(ctx context.Context, userID, songID string, req *domain.SongUpdateRequest) (*domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, su.contextTimeout)
	defer cancel()

	song, err := su.getOwned(ctx, userID, songID)
	if err != nil {
		return nil, err
	}

	var fields []domain.FieldError
	update := bson.M{"updated_at": time.Now().UTC()}
	if req.Title != nil {
		update["title"] = *req.Title
	}
	if req.Artist != nil {
		update["artist"] = *req.Artist
	}
	if req.Album != nil {
		update["album"] = *req.Album
	}
	if req.Genre != nil {
		if !req.Genre.Valid() {
			fields = append(fields, domain.FieldError{Field: "genre", Message: "unknown genre"})
		}
		update["genre"] = *req.Genre
	}
	if req.MoodTags != nil {
		for _, mood := range req.MoodTags {
			if !mood.Valid() {
				fields = append(fields, domain.FieldError{Field: "moodTags", Message: "unknown mood " + string(mood)})
			}
		}
		update["mood_tags"] = req.MoodTags
	}
	if req.Language != nil {
		update["language"] = *req.Language
	}
	if req.Energy != nil {
		if *req.Energy < 1 || *req.Energy > 10 {
			fields = append(fields, domain.FieldError{Field: "energy", Message: "must be between 1 and 10"})
		}
		update["energy"] = *req.Energy
	}
	if req.Valence != nil {
		if *req.Valence < 1 || *req.Valence > 10 {
			fields = append(fields, domain.FieldError{Field: "valence", Message: "must be between 1 and 10"})
		}
		update["valence"] = *req.Valence
	}
	if req.Tempo != nil {
		if !req.Tempo.Valid() {
			fields = append(fields, domain.FieldError{Field: "tempo", Message: "unknown tempo"})
		}
		update["tempo"] = *req.Tempo
	}
	if req.IsPublic != nil {
		update["is_public"] = *req.IsPublic
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	if err := su.songRepository.Update(ctx, song.ID, update); err != nil {
		return nil, err
	}
	return su.songRepository.GetByID(ctx, song.ID)
}

// Delete removes the document and then the audio file; a leftover file after
// a crash is waste, not corruption.
func (su *songUsecase) Delete(ctx context.Context, userID, songID string) error {
	ctx, cancel := context.WithTimeout(ctx, su.contextTimeout)
	defer cancel()

	song, err := su.getOwned(ctx, userID, songID)
	if err != nil {
		return err
	}
	if err := su.songRepository.Delete(ctx, song.ID); err != nil {
		return err
	}
	if song.FilePath != "" {
		if err := os.Remove(song.FilePath); err != nil && !os.IsNotExist(err) {
			return domain.NewServerError(err)
		}
	}
	return nil
}

func (su *songUsecase) IncrementPlayCount(ctx context.Context, songID string) error {
	ctx, cancel := context.WithTimeout(ctx, su.contextTimeout)
	defer cancel()

	oid, err := parseID(songID)
	if err != nil {
		return err
	}
	return su.songRepository.IncrementPlayCount(ctx, oid)
}

func (su *songUsecase) Recommend(ctx context.Context, userID string, mood domain.Mood, energy, valence, limit int) ([]domain.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, su.contextTimeout)
	defer cancel()

	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	var fields []domain.FieldError
	if mood != "" && !mood.Valid() {
		fields = append(fields, domain.FieldError{Field: "mood", Message: "unknown mood"})
	}
	if energy < 0 || energy > 10 {
		fields = append(fields, domain.FieldError{Field: "energy", Message: "when provided, must be between 1 and 10"})
	}
	if valence < 0 || valence > 10 {
		fields = append(fields, domain.FieldError{Field: "valence", Message: "when provided, must be between 1 and 10"})
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return su.songRepository.Recommend(ctx, domain.RecommendFilter{
		ViewerID: oid,
		Mood:     mood,
		Energy:   energy,
		Valence:  valence,
		Limit:    limit,
	})
}

// RecordPlayback stores the play event and bumps the song counter. The two
// writes are independent; a crash in between skews analytics, nothing more.
func (su *songUsecase) RecordPlayback(ctx context.Context, userID string, req *domain.PlaybackRequest) (*domain.PlaybackLog, error) {
	ctx, cancel := context.WithTimeout(ctx, su.contextTimeout)
	defer cancel()

	userOID, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	var fields []domain.FieldError
	if !req.Source.Valid() {
		fields = append(fields, domain.FieldError{Field: "source", Message: "unknown playback source"})
	}
	if req.Mood != "" && !req.Mood.Valid() {
		fields = append(fields, domain.FieldError{Field: "mood", Message: "unknown mood"})
	}
	if req.CompletionPercentage < 0 || req.CompletionPercentage > 100 {
		fields = append(fields, domain.FieldError{Field: "completionPercentage", Message: "must be between 0 and 100"})
	}
	if req.PlayDuration < 0 {
		fields = append(fields, domain.FieldError{Field: "playDuration", Message: "must not be negative"})
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	songOID, err := parseID(req.SongID)
	if err != nil {
		return nil, err
	}
	if _, err := su.songRepository.GetByID(ctx, songOID); err != nil {
		return nil, err
	}

	var playlistOID *primitive.ObjectID
	if req.PlaylistID != "" {
		oid, err := parseID(req.PlaylistID)
		if err != nil {
			return nil, err
		}
		playlistOID = &oid
	}

	log := &domain.PlaybackLog{
		UserID:               userOID,
		SongID:               songOID,
		PlaylistID:           playlistOID,
		Mood:                 req.Mood,
		MoodIntensity:        req.MoodIntensity,
		PlayDuration:         req.PlayDuration,
		CompletionPercentage: req.CompletionPercentage,
		Skipped:              req.Skipped,
		SkipReason:           req.SkipReason,
		Liked:                req.Liked,
		Source:               req.Source,
		SessionID:            req.SessionID,
	}
	if err := su.playbackRepository.Create(ctx, log); err != nil {
		return nil, err
	}
	if err := su.songRepository.IncrementPlayCount(ctx, songOID); err != nil {
		return nil, err
	}
	return log, nil
}
