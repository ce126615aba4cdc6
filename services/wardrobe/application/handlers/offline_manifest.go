package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/httpx"
)

const offlineCacheName = "wardrobe-app-v1"

var offlineAssets = []string{
	"/",
	"/index.html",
	"/manifest.json",
	"/images/top.svg",
	"/images/bottom.svg",
	"/images/outerwear.svg",
	"/images/footwear.svg",
	"/images/accessory.svg",
	"/images/cold-weather.svg",
	"/images/mild-weather.svg",
	"/images/hot-weather.svg",
	"/images/icon-192.png",
	"/images/icon-512.png",
	"/images/maskable-icon.png",
}

// Requests to these hosts always go to the network and are never cached.
var offlineExcludedHosts = []string{
	"api.weatherapi.com",
	"api-adresse.data.gouv.fr",
}

// OfflineManifestResponse tells the PWA service worker what to pre-cache.
type OfflineManifestResponse struct {
	CacheName     string   `json:"cacheName"     example:"wardrobe-app-v1"`
	Assets        []string `json:"assets"`
	ExcludedHosts []string `json:"excludedHosts"`
	Strategy      string   `json:"strategy"      example:"network-first"`
} // @name OfflineManifest

// OfflineManifestHandler handles GET /offline-manifest.json requests.
type OfflineManifestHandler struct{}

// NewOfflineManifestHandler returns an OfflineManifestHandler.
func NewOfflineManifestHandler() *OfflineManifestHandler {
	return &OfflineManifestHandler{}
}

// Execute returns the offline asset manifest.
//
//	@Summary		Offline asset manifest
//	@Description	Cache name, assets to pre-cache and hosts the service worker must not cache
//	@Tags			pwa
//	@Produce		json
//	@Success		200	{object}	OfflineManifestResponse
//	@Router			/offline-manifest.json [get]
func (h *OfflineManifestHandler) Execute(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	httpx.JSON(w, http.StatusOK, OfflineManifestResponse{
		CacheName:     offlineCacheName,
		Assets:        offlineAssets,
		ExcludedHosts: offlineExcludedHosts,
		Strategy:      "network-first",
	})
}
