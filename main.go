//go:build js || wasm
// +build js wasm

package main

import (
	"github.com/vcrobe/nojs-effects/components"
	"github.com/vcrobe/nojs-effects/pokemon"
	"github.com/vcrobe/nojs-effects/resource"
	"github.com/vcrobe/nojs-effects/router"
	"github.com/vcrobe/nojs-effects/runtime"
	"github.com/vcrobe/nojs-effects/store"
)

func main() {
	// 1. Create the Router and map paths to pages
	appRouter := router.New()
	components.RegisterRoutes(appRouter, components.Deps{
		Store:  store.LocalStorage{},
		Fetch:  pokemon.NewClient().Fetch,
		Policy: resource.SuppressStale,
	})

	// 2. Create the Renderer, passing the router as the NavigationManager
	renderer := runtime.NewRenderer(appRouter, "#app")

	// 3. Render whatever the router resolves
	appRouter.OnChange(func(newComponent runtime.Component, key string) {
		renderer.SetCurrentComponent(newComponent, key)
		renderer.RenderRoot()
	})

	// 4. Start the Router: reads the initial URL and triggers the first render
	if err := appRouter.Start(); err != nil {
		panic("Error starting router: " + err.Error())
	}

	// Keep the Go program running
	select {}
}
