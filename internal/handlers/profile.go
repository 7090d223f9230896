package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"devconnect/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgNoProfile          = "There is no profile for this user"
	msgNoGithubProfile    = "No github profile found"
	msgExperienceNotFound = "Experience not found"
	msgProfileDeleted     = "Profile deleted"
)

// profileRequest is a partial update: nil pointer = field absent = keep the
// stored value. Status and skills are the only mandatory fields.
type profileRequest struct {
	Handle         *string `json:"handle"`
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Status         *string `json:"status" binding:"required"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`
	Skills         *string `json:"skills" binding:"required"`

	Youtube   *string `json:"youtube"`
	Twitter   *string `json:"twitter"`
	Facebook  *string `json:"facebook"`
	Linkedin  *string `json:"linkedin"`
	Instagram *string `json:"instagram"`
}

var profileFieldMsgs = map[string]string{
	"Status": "Status is required",
	"Skills": "Skills is required",
}

type experienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

var experienceFieldMsgs = map[string]string{
	"Title":   "Title is required",
	"Company": "Company is required",
	"From":    "From date is required",
}

// @Summary      Own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  models.Profile
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  ErrorResponse
// @Router       /api/profile/me [get]
// @Security     ApiKeyAuth
func (h *Handler) myProfile(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		abortWithErrors(c, http.StatusUnauthorized, msgNoToken)
		return
	}

	p, err := h.services.Me(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": msgNoProfile})
			return
		}
		h.serverError(c, "profile_me_failed", err, "userId", id)
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      Create or update own profile
// @Description  Only fields present in the body overwrite stored values.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Profile fields"
// @Success      200   {object}  models.Profile
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/profile [post]
// @Security     ApiKeyAuth
func (h *Handler) saveProfile(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		abortWithErrors(c, http.StatusUnauthorized, msgNoToken)
		return
	}

	var req profileRequest
	if ok := h.bindAndValidate(c, &req, profileFieldMsgs); !ok {
		return
	}

	p, err := h.services.Save(c.Request.Context(), id, service.ProfileInput{
		Handle:         req.Handle,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		h.serverError(c, "profile_save_failed", err, "userId", id)
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      All profiles
// @Tags         profile
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, profiles"
// @Failure      500  {object}  ErrorResponse
// @Router       /api/profile [get]
func (h *Handler) listProfiles(c *gin.Context) {
	profiles, err := h.services.List(c.Request.Context())
	if err != nil {
		h.serverError(c, "profile_list_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(profiles),
		"profiles": profiles,
	})
}

// @Summary      Profile by user id
// @Tags         profile
// @Produce      json
// @Param        user_id  path      int  true  "Owner user id"
// @Success      200      {object}  models.Profile
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  ErrorResponse
// @Router       /api/profile/user/{user_id} [get]
func (h *Handler) profileByUserID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": msgNoProfile})
		return
	}

	p, err := h.services.GetByUserID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": msgNoProfile})
			return
		}
		h.serverError(c, "profile_by_user_failed", err, "userId", id)
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      Delete own profile and account
// @Tags         profile
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/profile [delete]
// @Security     ApiKeyAuth
func (h *Handler) deleteAccount(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		abortWithErrors(c, http.StatusUnauthorized, msgNoToken)
		return
	}

	if err := h.services.DeleteAccount(c.Request.Context(), id); err != nil {
		h.serverError(c, "account_delete_failed", err, "userId", id)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": msgProfileDeleted})
}

// @Summary      Add experience entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      experienceRequest  true  "Experience payload"
// @Success      200   {object}  models.Profile
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/profile/experience [put]
// @Security     ApiKeyAuth
func (h *Handler) addExperience(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		abortWithErrors(c, http.StatusUnauthorized, msgNoToken)
		return
	}

	var req experienceRequest
	if ok := h.bindAndValidate(c, &req, experienceFieldMsgs); !ok {
		return
	}

	p, err := h.services.AddExperience(c.Request.Context(), id, service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": msgNoProfile})
			return
		}
		h.serverError(c, "experience_add_failed", err, "userId", id)
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      Remove experience entry
// @Tags         profile
// @Produce      json
// @Param        exp_id  path      string  true  "Experience id"
// @Success      200     {object}  models.Profile
// @Failure      401     {object}  ErrorResponse
// @Failure      404     {object}  map[string]string
// @Router       /api/profile/experience/{exp_id} [delete]
// @Security     ApiKeyAuth
func (h *Handler) removeExperience(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		abortWithErrors(c, http.StatusUnauthorized, msgNoToken)
		return
	}

	p, err := h.services.RemoveExperience(c.Request.Context(), id, c.Param("exp_id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": msgNoProfile})
		case errors.Is(err, service.ErrExperienceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": msgExperienceNotFound})
		default:
			h.serverError(c, "experience_remove_failed", err, "userId", id)
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

// @Summary      GitHub repos for a username
// @Description  Five newest public repositories; failures are not retried.
// @Tags         profile
// @Produce      json
// @Param        username  path      string  true  "GitHub username"
// @Success      200       {array}   models.GithubRepo
// @Failure      404       {object}  map[string]string
// @Failure      500       {object}  ErrorResponse
// @Router       /api/profile/github/{username} [get]
func (h *Handler) githubRepos(c *gin.Context) {
	username := c.Param("username")

	repos, err := h.services.Repos(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrGithubNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": msgNoGithubProfile})
			return
		}
		h.serverError(c, "github_repos_failed", err, "username", username)
		return
	}

	c.JSON(http.StatusOK, repos)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
