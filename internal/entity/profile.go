package entity

// PlayerProfile is the subset of the player-info response the service
// consumes. Missing sections decode to zero values; callers treat absent
// fields as "omit this layer" explicitly.
type PlayerProfile struct {
	AccountProfileInfo AccountProfileInfo `json:"AccountProfileInfo"`
	AccountInfo        AccountInfo        `json:"AccountInfo"`
	PetInfo            PetInfo            `json:"petInfo"`
}

type AccountProfileInfo struct {
	EquippedOutfit []int64 `json:"EquippedOutfit"`
	EquippedSkills []int64 `json:"EquippedSkills"`
}

type AccountInfo struct {
	AccountAvatarId int64   `json:"AccountAvatarId"`
	EquippedWeapon  []int64 `json:"EquippedWeapon"`
}

type PetInfo struct {
	ID int64 `json:"id"`
}

// SkillID picks the skill used for the character layer: the second equipped
// skill when there are at least two, the only one when there is exactly one.
func (p *PlayerProfile) SkillID() (int64, bool) {
	skills := p.AccountProfileInfo.EquippedSkills
	switch {
	case len(skills) > 1:
		return skills[1], true
	case len(skills) == 1:
		return skills[0], true
	default:
		return 0, false
	}
}

// Character is the character-metadata record. The upstream service uses
// space-separated JSON keys.
type Character struct {
	PngImage         string `json:"Png Image"`
	CharacterName    string `json:"Character Name"`
	Description      string `json:"Description"`
	SkillName        string `json:"Skill Name"`
	SkillDescription string `json:"Skill Description"`
}

type CharacterDetails struct {
	Description      string `json:"description"`
	SkillName        string `json:"skill_name"`
	SkillDescription string `json:"skill_description"`
}

type CharacterInfoResponse struct {
	SkillID         int64            `json:"skill_id"`
	PngURL          string           `json:"png_url"`
	CharacterName   string           `json:"character_name"`
	CharacterInfo   CharacterDetails `json:"character_info"`
	CharacterConfig LayerRect        `json:"character_config"`
}

// RenderEvent is published after each successful composite.
type RenderEvent struct {
	RenderID      string `json:"render_id"`
	UID           string `json:"uid"`
	Region        string `json:"region"`
	LayersDrawn   int    `json:"layers_drawn"`
	LayersOmitted int    `json:"layers_omitted"`
	DurationMs    int64  `json:"duration_ms"`
}
