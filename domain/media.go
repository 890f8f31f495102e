package domain

import "time"

// MediaSource is one record of the media sources collection.
type MediaSource struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Perspective DeclaredPerspective `json:"perspective"`
	Description string              `json:"description,omitempty"`
	WebsiteURL  string              `json:"websiteUrl,omitempty"`
	CreatedAt   *time.Time          `json:"createdAt"`
}

// MediaSupportPoint is one step of a media source's cumulative support curve.
// CumulativeSupport never decreases for a fixed (MediaID, Perspective) and
// grows by exactly one per contributing evaluation.
type MediaSupportPoint struct {
	MediaID           string      `json:"mediaId"`
	MediaName         string      `json:"mediaName"`
	Date              time.Time   `json:"date"`
	Perspective       Perspective `json:"perspective"`
	CumulativeSupport int         `json:"cumulativeSupport"`
}
