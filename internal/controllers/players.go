package controllers

import (
	"context"
	"reflect"

	"sports-explorer/internal/imaging"
	"sports-explorer/internal/logger"
	"sports-explorer/internal/render"
)

// PlayerController searches players and loads their photos.
type PlayerController struct {
	base
	thumbs ThumbnailFetcher
}

// NewPlayerController builds the controller. A nil thumbs, including a nil pointer wrapped in
// the interface, disables photos.
func NewPlayerController(client SportsClient, thumbs ThumbnailFetcher, log logger.Logger) *PlayerController {
	if isNil(thumbs) {
		thumbs = nil
	}
	return &PlayerController{base: newBase(client, log), thumbs: thumbs}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Interface, reflect.Chan, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func (c *PlayerController) Search(ctx context.Context, name string, out PlayerOutput) (err error) {
	name, err = requireInput(name, "Please enter a player name!", out)
	if err != nil {
		return err
	}

	done := c.begin("search_players", map[string]interface{}{"player": name})
	defer func() { done(err) }()

	out.Clear()
	players, err := c.client.SearchPlayers(ctx, name)
	if err != nil {
		out.ShowError(err)
		return err
	}

	if len(players) == 0 {
		out.Append(render.NoPlayers)
		return nil
	}

	for _, player := range players {
		var thumb *imaging.Thumbnail
		if player.HasThumb() && c.thumbs != nil {
			thumb = c.loadThumbnail(ctx, player.ThumbURL.String())
		}
		out.AppendPlayer(render.Player(player), thumb)
	}
	return nil
}

// loadThumbnail never fails the search: a broken photo only costs the photo.
func (c *PlayerController) loadThumbnail(ctx context.Context, url string) *imaging.Thumbnail {
	thumb, err := c.thumbs.Fetch(ctx, url)
	if err != nil {
		c.log.Warning(component, "image fetch failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return nil
	}
	return thumb
}
