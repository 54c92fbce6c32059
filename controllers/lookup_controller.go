package controllers

import (
	"net/http"
	"strings"

	"github.com/footyhub/footyhub/clients"
	"github.com/footyhub/footyhub/services"
	"github.com/footyhub/footyhub/userctx"
)

// LookupController serves the weather, team info and news pages
type LookupController struct {
	services *services.Services
}

// NewLookupController creates a new lookup controller
func NewLookupController(services *services.Services) *LookupController {
	return &LookupController{
		services: services,
	}
}

type searchData struct {
	Page
	City    string
	Weather *clients.Weather
}

// SearchPage handles GET /search
func (c *LookupController) SearchPage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "search.html", searchData{Page: newPage(r, "Weather", "search")})
}

// Search handles POST /search
func (c *LookupController) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	data := searchData{
		Page: newPage(r, "Weather", "search"),
		City: strings.TrimSpace(r.FormValue("city")),
	}

	weather, err := c.services.Lookup.Weather(r.Context(), data.User, data.City)
	if err != nil {
		status := statusFor(err)
		switch status {
		case http.StatusInternalServerError:
			serverError(w, r, err, "weather lookup failed")
			return
		case http.StatusNotFound:
			data.Error = "City not found"
		case http.StatusOK:
			data.Error = "The weather service is unavailable right now. Please try again later."
		default:
			data.Error = err.Error()
		}
		renderTemplateWithStatus(w, status, "search.html", data)
		return
	}

	data.Weather = weather
	renderTemplate(w, "search.html", data)
}

type teamInfoData struct {
	Page
	TeamName string
	TeamInfo *clients.TeamInfo
}

// TeamInfoPage handles GET /team-info
func (c *LookupController) TeamInfoPage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "team_info.html", teamInfoData{Page: newPage(r, "Team info", "team_info")})
}

// TeamInfo handles POST /team-info
func (c *LookupController) TeamInfo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	data := teamInfoData{
		Page:     newPage(r, "Team info", "team_info"),
		TeamName: strings.TrimSpace(r.FormValue("teamName")),
	}

	info, err := c.services.Lookup.TeamInfo(r.Context(), data.User, data.TeamName)
	if err != nil {
		status := statusFor(err)
		switch status {
		case http.StatusInternalServerError:
			serverError(w, r, err, "team info lookup failed")
			return
		case http.StatusNotFound:
			data.Error = "Team not found"
		case http.StatusOK:
			data.Error = "Team information is unavailable right now. Please try again later."
		default:
			data.Error = err.Error()
		}
		renderTemplateWithStatus(w, status, "team_info.html", data)
		return
	}

	data.TeamInfo = info
	renderTemplate(w, "team_info.html", data)
}

// FootballNews handles GET /football-news
func (c *LookupController) FootballNews(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Page
		Articles []clients.Article
	}{
		Page: newPage(r, "Football news", "football_news"),
	}

	articles, err := c.services.Lookup.News(r.Context(), userctx.GetUser(r.Context()))
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			serverError(w, r, err, "football news lookup failed")
			return
		}
		data.Error = "Could not fetch football news. Please try again later."
		renderTemplate(w, "football_news.html", data)
		return
	}

	data.Articles = articles
	renderTemplate(w, "football_news.html", data)
}
