package usecase

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/moodtunes/moodtunes-backend/domain"
)

type playlistUsecase struct {
	playlistRepository domain.PlaylistRepository
	songRepository     domain.SongRepository
	contextTimeout     time.Duration
}

func NewPlaylistUsecase(
	playlistRepository domain.PlaylistRepository,
	songRepository domain.SongRepository,
	timeout time.Duration,
) domain.PlaylistUsecase {
	return &playlistUsecase{
		playlistRepository: playlistRepository,
		songRepository:     songRepository,
		contextTimeout:     timeout,
	}
}

func (pu *playlistUsecase) Create(ctx context.Context, userID string, req *domain.PlaylistCreateRequest) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	var fields []domain.FieldError
	if req.Name == "" {
		fields = append(fields, domain.FieldError{Field: "name", Message: "is required"})
	}
	if req.Mood != "" && !req.Mood.Valid() {
		fields = append(fields, domain.FieldError{Field: "mood", Message: "unknown mood"})
	}
	songIDs := make([]primitive.ObjectID, 0, len(req.SongIDs))
	for _, raw := range req.SongIDs {
		songOID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			fields = append(fields, domain.FieldError{Field: "songIds", Message: "invalid song id " + raw})
			continue
		}
		songIDs = append(songIDs, songOID)
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	playlist := &domain.Playlist{
		Name:        req.Name,
		Description: req.Description,
		SongIDs:     songIDs,
		OwnerID:     oid,
		Mood:        req.Mood,
		IsPublic:    req.IsPublic,
	}
	if err := pu.playlistRepository.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (pu *playlistUsecase) Fetch(ctx context.Context, userID string, filter domain.PlaylistFilter) ([]domain.Playlist, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	if userID != "" {
		oid, err := parseID(userID)
		if err != nil {
			return nil, 0, err
		}
		filter.ViewerID = oid
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	return pu.playlistRepository.Fetch(ctx, filter)
}

func (pu *playlistUsecase) GetByID(ctx context.Context, userID, playlistID string) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	oid, err := parseID(playlistID)
	if err != nil {
		return nil, err
	}
	playlist, err := pu.playlistRepository.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !playlist.IsPublic && playlist.OwnerID.Hex() != userID {
		return nil, domain.NewAuthorizationError("playlist is private")
	}
	return playlist, nil
}

func (pu *playlistUsecase) getOwned(ctx context.Context, userID, playlistID string) (*domain.Playlist, error) {
	oid, err := parseID(playlistID)
	if err != nil {
		return nil, err
	}
	playlist, err := pu.playlistRepository.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerID.Hex() != userID {
		return nil, domain.NewAuthorizationError("playlist belongs to another user")
	}
	return playlist, nil
}

func (pu *playlistUsecase) Update(ctx context.Context, userID, playlistID string, req *domain.PlaylistUpdateRequest) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	playlist, err := pu.getOwned(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"updated_at": time.Now().UTC()}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, domain.NewValidationError([]domain.FieldError{{Field: "name", Message: "must not be empty"}})
		}
		update["name"] = *req.Name
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Mood != nil {
		if *req.Mood != "" && !req.Mood.Valid() {
			return nil, domain.NewValidationError([]domain.FieldError{{Field: "mood", Message: "unknown mood"}})
		}
		update["mood"] = *req.Mood
	}
	if req.IsPublic != nil {
		update["is_public"] = *req.IsPublic
	}

	if err := pu.playlistRepository.Update(ctx, playlist.ID, update); err != nil {
		return nil, err
	}
	return pu.playlistRepository.GetByID(ctx, playlist.ID)
}

func (pu *playlistUsecase) Delete(ctx context.Context, userID, playlistID string) error {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	playlist, err := pu.getOwned(ctx, userID, playlistID)
	if err != nil {
		return err
	}
	return pu.playlistRepository.Delete(ctx, playlist.ID)
}

var titleCaser = cases.Title(language.English)

// generatedName concatenates the applied filter values, e.g. mood=happy
// alone yields "Happy Mix".
func generatedName(req *domain.AutoGenerateRequest) string {
	parts := make([]string, 0, 4)
	if req.Mood != "" {
		parts = append(parts, titleCaser.String(string(req.Mood)))
	}
	if req.Tempo != "" {
		parts = append(parts, titleCaser.String(string(req.Tempo)))
	}
	if req.Genre != "" {
		parts = append(parts, titleCaser.String(string(req.Genre)))
	}
	if len(parts) == 0 {
		parts = append(parts, "Fresh")
	}
	parts = append(parts, "Mix")
	return strings.Join(parts, " ")
}

func (pu *playlistUsecase) AutoGenerate(ctx context.Context, userID string, req *domain.AutoGenerateRequest) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	var fields []domain.FieldError
	if req.Mood != "" && !req.Mood.Valid() {
		fields = append(fields, domain.FieldError{Field: "mood", Message: "unknown mood"})
	}
	if req.Tempo != "" && !req.Tempo.Valid() {
		fields = append(fields, domain.FieldError{Field: "tempo", Message: "unknown tempo"})
	}
	if req.Genre != "" && !req.Genre.Valid() {
		fields = append(fields, domain.FieldError{Field: "genre", Message: "unknown genre"})
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	songs, err := pu.songRepository.FindForPlaylist(ctx, oid, req.Mood, req.Tempo, req.Genre, req.Limit)
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, domain.NewNotFoundError("no songs match the requested filters")
	}

	songIDs := make([]primitive.ObjectID, 0, len(songs))
	for _, song := range songs {
		songIDs = append(songIDs, song.ID)
	}

	playlist := &domain.Playlist{
		Name:            generatedName(req),
		Description:     "Automatically generated from your filters",
		SongIDs:         songIDs,
		OwnerID:         oid,
		Mood:            req.Mood,
		IsAutoGenerated: true,
		GeneratedFor: &domain.GeneratedFor{
			Mood:  req.Mood,
			Tempo: req.Tempo,
			Genre: req.Genre,
			Limit: req.Limit,
		},
	}
	if err := pu.playlistRepository.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (pu *playlistUsecase) AddSong(ctx context.Context, userID, playlistID, songID string) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	playlist, err := pu.getOwned(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}
	songOID, err := parseID(songID)
	if err != nil {
		return nil, err
	}
	if _, err := pu.songRepository.GetByID(ctx, songOID); err != nil {
		return nil, err
	}
	if err := pu.playlistRepository.AddSong(ctx, playlist.ID, songOID); err != nil {
		return nil, err
	}
	return pu.playlistRepository.GetByID(ctx, playlist.ID)
}

func (pu *playlistUsecase) RemoveSong(ctx context.Context, userID, playlistID, songID string) (*domain.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	playlist, err := pu.getOwned(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}
	songOID, err := parseID(songID)
	if err != nil {
		return nil, err
	}
	if err := pu.playlistRepository.RemoveSong(ctx, playlist.ID, songOID); err != nil {
		return nil, err
	}
	return pu.playlistRepository.GetByID(ctx, playlist.ID)
}

func (pu *playlistUsecase) IncrementPlayCount(ctx context.Context, playlistID string) error {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	oid, err := parseID(playlistID)
	if err != nil {
		return err
	}
	return pu.playlistRepository.IncrementPlayCount(ctx, oid)
}

func (pu *playlistUsecase) SetFollowing(ctx context.Context, userID, playlistID string, following bool) error {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	userOID, err := parseID(userID)
	if err != nil {
		return err
	}
	playlistOID, err := parseID(playlistID)
	if err != nil {
		return err
	}
	playlist, err := pu.playlistRepository.GetByID(ctx, playlistOID)
	if err != nil {
		return err
	}
	if !playlist.IsPublic && playlist.OwnerID != userOID {
		return domain.NewAuthorizationError("playlist is private")
	}
	return pu.playlistRepository.SetFollowing(ctx, playlistOID, userOID, following)
}
