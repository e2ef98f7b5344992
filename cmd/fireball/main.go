package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"fireball/app"
	"fireball/config"
	"fireball/controls"
	"fireball/export"
	"fireball/internal/opengl"
	"fireball/math"
	"fireball/platform"
	"fireball/renderer"
	"fireball/scene"
)

var keyBindings = controls.KeyBindings{
	LevelUp:     platform.KeyUp,
	LevelDown:   platform.KeyDown,
	OctavesUp:   platform.KeyRight,
	OctavesDown: platform.KeyLeft,
	LoadScene:   platform.KeyL,
	Quit:        platform.KeyEscape,
}

func main() {
	configPath := flag.String("config", "settings.json", "settings file")
	exportPath := flag.String("export", "", "write the icosphere to this .obj or .glb file and exit")
	level := flag.Int("level", -1, "tessellation level, overrides the settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	if *exportPath != "" {
		lvl := settings.Controls.Tesselations
		if *level >= 0 {
			lvl = *level
		}
		if err := exportMesh(*exportPath, lvl); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		return
	}

	if *level >= 0 {
		settings.Controls.Tesselations = *level
		settings.Controls.Clamp()
	}
	if err := run(settings); err != nil {
		log.Fatalf("%v", err)
	}
}

func exportMesh(path string, level int) error {
	mesh, err := scene.BuildIcosphere(math.Vec3Zero, 1, level)
	if err != nil {
		return err
	}
	if err := export.Save(path, mesh); err != nil {
		return err
	}
	fmt.Printf("Exported %s: %d vertices, %d faces\n", path, len(mesh.Vertices), len(mesh.Faces))
	return nil
}

func run(settings config.Settings) error {
	fmt.Println("Starting fireball...")

	window, err := platform.NewWindow(platform.WindowConfig{
		Width:     settings.Window.Width,
		Height:    settings.Window.Height,
		Title:     settings.Window.Title,
		Resizable: settings.Window.Resizable,
		VSync:     settings.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()

	device, err := opengl.NewDevice()
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	defer device.Destroy()

	cam := settings.Camera
	camera := scene.NewCamera(cam.PositionVec(), cam.TargetVec())
	camera.Up = cam.UpVec()
	camera.FOV = cam.FOVRadians()
	camera.NearPlane = cam.Near
	camera.FarPlane = cam.Far
	camera.Update()

	opts := app.DefaultOptions()
	opts.TimeStep = settings.Render.TimeStep
	opts.ClearColor = settings.Render.Clear()

	fireball, err := app.New(renderer.NewContext(device), camera, settings.Controls, opts)
	if err != nil {
		return err
	}
	defer fireball.Shutdown()

	window.SetResizeCallback(fireball.Resize)
	fireball.Resize(window.GetFramebufferSize())

	if settings.Panel.Enabled {
		panel := controls.NewPanel(fireball.Queue())
		go func() {
			if err := panel.ListenAndServe(settings.Panel.Addr); err != nil {
				fmt.Printf("Control panel stopped: %v\n", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			panel.Shutdown(ctx)
		}()
	}

	keyboard := controls.NewKeyboard(window, keyBindings)
	fmt.Println("Up/Down: tessellation, Left/Right: octaves, L: load scene, Esc: quit")

	frames := 0
	lastTitle := time.Now()

	for !window.ShouldClose() {
		window.PollEvents()

		cmds, quit := keyboard.Poll()
		if quit {
			break
		}
		for _, cmd := range cmds {
			if err := fireball.Dispatch(cmd); err != nil {
				fmt.Printf("Ignoring command %v: %v\n", cmd, err)
			}
		}

		if err := fireball.Tick(); err != nil {
			return err
		}
		window.SwapBuffers()

		frames++
		if elapsed := time.Since(lastTitle); elapsed >= time.Second {
			fps := float64(frames) / elapsed.Seconds()
			vertices, faces := fireball.MeshSize()
			window.SetTitle(fmt.Sprintf("%s | %.0f FPS | level %d (%d vertices, %d faces)",
				settings.Window.Title, fps, fireball.Level(), vertices, faces))
			frames = 0
			lastTitle = time.Now()
		}
	}

	fmt.Println("Shutting down")
	return nil
}
