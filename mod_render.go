package lamproom

import (
	"errors"
	"image"

	"github.com/gekko3d/lamproom/rt/core"
	"github.com/gekko3d/lamproom/rt/opengl"
)

// RenderModule owns the OpenGL renderer. It needs the window (for the
// context) and the asset server; the scene is drawn once per frame in the
// Render stage and the buffers swap in Finale.
type RenderModule struct{}

// uploader is the part of the renderer that receives CPU-side assets.
type uploader interface {
	UploadModel(id core.AssetId, model *core.Model)
	UploadTexture(id core.AssetId, img *image.RGBA)
}

func (RenderModule) Install(app *App, cmd *Commands) {
	ws, ok := Resource[WindowState](app)
	if !ok {
		cmd.Fail(errors.New("render: no window; install PlatformWindowModule first"))
		return
	}
	assets, ok := Resource[AssetServer](app)
	if !ok {
		cmd.Fail(errors.New("render: no asset server; install AssetServerModule first"))
		return
	}

	r, err := opengl.New()
	if err != nil {
		cmd.Fail(err)
		return
	}
	cmd.OnCleanup(r.Release)
	cmd.AddResources(r)

	r.Resize(ws.FramebufferWidth, ws.FramebufferHeight)
	ws.Resized = false
	models, textures := uploadPending(assets, r)
	cmd.Logger().Infof("render: %s, %d models and %d textures uploaded", opengl.Version(), models, textures)

	app.UseSystem(
		System(renderSystem).
			InStage(Render),
	)
	app.UseSystem(
		System(swapSystem).
			InStage(Finale),
	)
}

// uploadPending hands every asset loaded since the last call to the renderer.
func uploadPending(assets *AssetServer, r uploader) (models, textures int) {
	modelIds, textureIds := assets.TakePending()
	for _, id := range modelIds {
		if m, ok := assets.Model(id); ok {
			r.UploadModel(id, m)
			models++
		}
	}
	for _, id := range textureIds {
		if t, ok := assets.Texture(id); ok {
			r.UploadTexture(id, t)
			textures++
		}
	}
	return models, textures
}

func renderSystem(ws *WindowState, assets *AssetServer, r *opengl.Renderer, scene *core.Scene, state *core.SceneState) {
	uploadPending(assets, r)
	if ws.Resized {
		r.Resize(ws.FramebufferWidth, ws.FramebufferHeight)
		ws.Resized = false
	}
	r.BeginFrame()
	scene.Draw(state, r)
}

func swapSystem(ws *WindowState) {
	ws.SwapBuffers()
}
