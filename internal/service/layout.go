package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grandmixture/profile-card/internal/entity"
)

// resolveOutfitSlots assigns an outfit ID to each of the 7 card slots. Slot i
// takes the first equipped ID whose decimal form starts with the slot's
// prefix and that no earlier slot has claimed; unmatched slots get the fixed
// fallback ID. Matched IDs are consumed exactly once per request, even when
// two slots share a prefix.
func resolveOutfitSlots(profile *entity.PlayerProfile) [7]int64 {
	used := make(map[int64]bool)

	var slots [7]int64
	for i, prefix := range entity.OutfitPrefixes {
		matched := entity.OutfitFallbacks[i]
		for _, oid := range profile.AccountProfileInfo.EquippedOutfit {
			if used[oid] {
				continue
			}
			if strings.HasPrefix(strconv.FormatInt(oid, 10), prefix) {
				matched = oid
				used[oid] = true
				break
			}
		}
		slots[i] = matched
	}
	return slots
}

func (s *profileService) playerInfoURL(uid, region string) string {
	return fmt.Sprintf("%s?region=%s&uid=%s", s.upstream.PlayerInfoURL, region, uid)
}

func (s *profileService) iconURL(id int64) string {
	return fmt.Sprintf("%s?id=%d", s.upstream.IconURL, id)
}

func (s *profileService) avatarURL(id int64) string {
	return fmt.Sprintf("%s?id=%d", s.upstream.AvatarURL, id)
}

func (s *profileService) characterURL(skillID int64) string {
	return fmt.Sprintf("%s/Id=%d", s.upstream.CharacterURL, skillID)
}
