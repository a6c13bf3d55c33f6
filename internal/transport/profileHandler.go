package transport

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/grandmixture/profile-card/internal/entity"
	"github.com/grandmixture/profile-card/internal/service"
)

func (h *ProfileHandler) OutfitImage(c *gin.Context) {
	uid := c.Query("uid")
	region := c.Query("region")

	if uid == "" || region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing uid or region"})
		return
	}
	if c.Query("key") != h.apiKey {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or missing API key"})
		return
	}

	// char_width/char_height are accepted for client compatibility but the
	// character layer is always contain-fitted from the fetched image's
	// aspect ratio, so they have no effect.
	_ = intQuery(c, "char_width", entity.CharacterRect.W)
	_ = intQuery(c, "char_height", entity.CharacterRect.H)

	opts := service.RenderOptions{
		WeaponSize:       intQuery(c, "weapon_size", h.defaultWeaponSize),
		RemoveBackground: boolQuery(c, "remove_bg", true),
	}

	png, err := h.service.RenderProfileCard(c.Request.Context(), uid, region, opts)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPlayerInfoUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch player info"})
		case errors.Is(err, entity.ErrBackgroundUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch background image"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Exception: " + err.Error()})
		}
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *ProfileHandler) CharacterInfo(c *gin.Context) {
	uid := c.Query("uid")
	region := c.Query("region")

	if uid == "" || region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing uid or region"})
		return
	}
	if c.Query("key") != h.apiKey {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or missing API key"})
		return
	}

	info, err := h.service.CharacterInfo(c.Request.Context(), uid, region)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPlayerInfoUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch player info"})
		case errors.Is(err, entity.ErrSkillNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Skill ID not found"})
		case errors.Is(err, entity.ErrCharacterImageMissing):
			c.JSON(http.StatusNotFound, gin.H{"error": "Png Image not found in character response"})
		case errors.Is(err, entity.ErrCharacterInfoUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get character info"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Exception: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, info)
}

func intQuery(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

func boolQuery(c *gin.Context, name string, defaultValue bool) bool {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	return strings.EqualFold(raw, "true")
}
