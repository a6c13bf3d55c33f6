package service

import (
	"bytes"
	"context"
	"image"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/grandmixture/profile-card/internal/entity"
	"github.com/grandmixture/profile-card/internal/pkg/processor"
)

// RenderProfileCard composites the profile card for one player. The 7 outfit
// icons are prefetched on the shared pool while the background downloads;
// everything else runs on the request path. Layers draw in a fixed z-order:
// outfits, avatar, character, weapons. A missing optional layer is skipped,
// never fatal; only player info and the background are required.
func (s *profileService) RenderProfileCard(ctx context.Context, uid, region string, opts RenderOptions) ([]byte, error) {
	start := time.Now()

	profile, err := s.fetchPlayerInfo(ctx, uid, region)
	if err != nil {
		return nil, entity.ErrPlayerInfoUnavailable
	}

	slots := resolveOutfitSlots(profile)

	outfits := make([]*image.NRGBA, len(slots))
	var wg sync.WaitGroup
	for i, id := range slots {
		wg.Add(1)
		s.pool.Submit(func() {
			defer wg.Done()
			img, err := s.fetcher.FetchImage(ctx, s.iconURL(id))
			if err != nil {
				logrus.Warnf("Outfit slot %d (id %d) unavailable: %v", i, id, err)
				return
			}
			outfits[i] = processor.Normalize(img, processor.Options{
				Width:  entity.OutfitIconSize,
				Height: entity.OutfitIconSize,
			})
		})
	}

	background, err := s.fetcher.FetchImage(ctx, s.upstream.BackgroundURL)
	if err != nil {
		return nil, entity.ErrBackgroundUnavailable
	}
	canvas := imaging.Clone(background)

	wg.Wait()

	drawn, omitted := 0, 0
	for i, outfit := range outfits {
		if outfit == nil {
			omitted++
			continue
		}
		canvas = pasteLayer(canvas, outfit, entity.OutfitParts[i])
		drawn++
	}

	var ok bool
	if canvas, ok = s.drawAvatar(ctx, canvas, profile); ok {
		drawn++
	} else {
		omitted++
	}

	if canvas, ok = s.drawCharacter(ctx, canvas, profile, opts.RemoveBackground); ok {
		drawn++
	} else {
		omitted++
	}

	canvas, d, o := s.drawWeapons(ctx, canvas, profile, opts.WeaponSize)
	drawn += d
	omitted += o

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, err
	}

	s.publishRenderEvent(uid, region, drawn, omitted, time.Since(start))

	return buf.Bytes(), nil
}

// CharacterInfo resolves the player's skill and returns the character
// metadata for it.
func (s *profileService) CharacterInfo(ctx context.Context, uid, region string) (*entity.CharacterInfoResponse, error) {
	profile, err := s.fetchPlayerInfo(ctx, uid, region)
	if err != nil {
		return nil, entity.ErrPlayerInfoUnavailable
	}

	skillID, ok := profile.SkillID()
	if !ok {
		return nil, entity.ErrSkillNotFound
	}

	var char entity.Character
	if err := s.fetcher.FetchJSON(ctx, s.characterURL(skillID), &char); err != nil {
		logrus.Errorf("Character lookup failed for skill %d: %v", skillID, err)
		return nil, entity.ErrCharacterInfoUnavailable
	}

	if char.PngImage == "" {
		return nil, entity.ErrCharacterImageMissing
	}

	return &entity.CharacterInfoResponse{
		SkillID:       skillID,
		PngURL:        char.PngImage,
		CharacterName: char.CharacterName,
		CharacterInfo: entity.CharacterDetails{
			Description:      char.Description,
			SkillName:        char.SkillName,
			SkillDescription: char.SkillDescription,
		},
		CharacterConfig: entity.CharacterRect,
	}, nil
}

func (s *profileService) fetchPlayerInfo(ctx context.Context, uid, region string) (*entity.PlayerProfile, error) {
	var profile entity.PlayerProfile
	if err := s.fetcher.FetchJSON(ctx, s.playerInfoURL(uid, region), &profile); err != nil {
		logrus.Errorf("Player info fetch failed for uid=%s region=%s: %v", uid, region, err)
		return nil, err
	}
	return &profile, nil
}

func (s *profileService) drawAvatar(ctx context.Context, canvas *image.NRGBA, profile *entity.PlayerProfile) (*image.NRGBA, bool) {
	avatarID := profile.AccountInfo.AccountAvatarId
	if avatarID == 0 {
		return canvas, false
	}

	img, err := s.fetcher.FetchImage(ctx, s.avatarURL(avatarID))
	if err != nil {
		logrus.Warnf("Avatar %d unavailable: %v", avatarID, err)
		return canvas, false
	}

	avatar := processor.Normalize(img, processor.Options{
		Width:  entity.AvatarRect.W,
		Height: entity.AvatarRect.H,
	})
	return imaging.Overlay(canvas, avatar, image.Pt(entity.AvatarRect.X, entity.AvatarRect.Y), 1.0), true
}

// drawCharacter looks up the character record for the player's skill, then
// contain-fits the character image inside the configured box, centered.
// Unlike the other layers the target rectangle depends on the fetched image's
// aspect ratio. Every failure along the way just omits the layer.
func (s *profileService) drawCharacter(ctx context.Context, canvas *image.NRGBA, profile *entity.PlayerProfile, removeBG bool) (*image.NRGBA, bool) {
	skillID, ok := profile.SkillID()
	if !ok {
		return canvas, false
	}

	var char entity.Character
	if err := s.fetcher.FetchJSON(ctx, s.characterURL(skillID), &char); err != nil {
		logrus.Warnf("Character record for skill %d unavailable: %v", skillID, err)
		return canvas, false
	}
	if char.PngImage == "" {
		return canvas, false
	}

	img, err := s.fetcher.FetchImage(ctx, char.PngImage)
	if err != nil {
		logrus.Warnf("Character image unavailable: %v", err)
		return canvas, false
	}

	bounds := img.Bounds()
	fit := processor.FitRect(bounds.Dx(), bounds.Dy(), entity.CharacterRect)

	character := processor.Normalize(img, processor.Options{
		Width:            fit.W,
		Height:           fit.H,
		RemoveBackground: removeBG,
	})
	return imaging.Overlay(canvas, character, image.Pt(fit.X, fit.Y), 1.0), true
}

// drawWeapons pastes up to 3 equipped weapons, bounded by the configured
// weapon rectangles. Weapon icons always get background removal.
func (s *profileService) drawWeapons(ctx context.Context, canvas *image.NRGBA, profile *entity.PlayerProfile, weaponSize int) (out *image.NRGBA, drawn, omitted int) {
	out = canvas
	weapons := profile.AccountInfo.EquippedWeapon
	for i, weaponID := range weapons {
		if i >= 3 || i >= len(entity.WeaponRects) {
			break
		}

		img, err := s.fetcher.FetchImage(ctx, s.iconURL(weaponID))
		if err != nil {
			logrus.Warnf("Weapon %d unavailable: %v", weaponID, err)
			omitted++
			continue
		}

		weapon := processor.Normalize(img, processor.Options{
			Width:            weaponSize,
			Height:           weaponSize,
			RemoveBackground: true,
		})
		out = pasteLayer(out, weapon, entity.WeaponRects[i])
		drawn++
	}
	return out, drawn, omitted
}

// pasteLayer resizes layer to fill rect and alpha-composites it onto the
// canvas; transparent layer pixels leave the canvas untouched.
func pasteLayer(canvas *image.NRGBA, layer image.Image, rect entity.LayerRect) *image.NRGBA {
	resized := imaging.Resize(layer, rect.W, rect.H, imaging.Lanczos)
	return imaging.Overlay(canvas, resized, image.Pt(rect.X, rect.Y), 1.0)
}

func (s *profileService) publishRenderEvent(uid, region string, drawn, omitted int, elapsed time.Duration) {
	event := entity.RenderEvent{
		RenderID:      uuid.New().String(),
		UID:           uid,
		Region:        region,
		LayersDrawn:   drawn,
		LayersOmitted: omitted,
		DurationMs:    elapsed.Milliseconds(),
	}

	if err := s.producer.SendMessage(s.topic, event); err != nil {
		logrus.Warnf("Failed to publish render event %s: %v", event.RenderID, err)
	}
}
