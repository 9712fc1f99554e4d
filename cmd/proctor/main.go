// Proctor - exam-session monitoring engine
//
// Fuses per-frame face and object detections into debounced violation
// events, with a live dashboard and optional remote event sink.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/examwatch/go-proctor/internal/log"
	"github.com/examwatch/go-proctor/pkg/detect"
	"github.com/examwatch/go-proctor/pkg/monitor"
	"github.com/examwatch/go-proctor/pkg/sink"
	"github.com/examwatch/go-proctor/pkg/web"
)

func main() {
	var (
		port     = flag.String("port", "8088", "Dashboard port")
		script   = flag.String("script", "", "Replay script (JSON) instead of a camera")
		loop     = flag.Bool("loop", false, "Loop the replay script")
		camera   = flag.Int("camera", 0, "Camera device ID")
		faces    = flag.String("face-model", "models/face_detection_yunet.onnx", "YuNet face model path")
		objects  = flag.String("object-model", "models/yolov8n.onnx", "YOLO object model path")
		sinkURL  = flag.String("sink", "", "Remote collector websocket URL (optional)")
		preset   = flag.String("preset", "default", "Config preset: default, strict, relaxed")
		interval = flag.Duration("interval", 0, "Tick interval override (e.g. 300ms)")
		level    = flag.String("log-level", "info", "Log level: debug, info, warn, error")
		auto     = flag.Bool("start", true, "Start monitoring immediately")
	)
	flag.Parse()

	log.Init(*level)

	cfg := configForPreset(*preset)
	if *interval > 0 {
		cfg.TickInterval = *interval
	}

	source, closeSource, err := buildSource(*script, *loop, *camera, *faces, *objects)
	if err != nil {
		log.Error("source setup failed", "error", err)
		os.Exit(1)
	}
	defer closeSource()

	mon, err := monitor.New(cfg, source)
	if err != nil {
		log.Error("configuration error", "error", err)
		os.Exit(1)
	}

	metrics := monitor.NewMetrics()
	mon.SetMetrics(metrics)

	server := web.NewServer(*port, mon, metrics)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *sinkURL != "" {
		events := sink.New(sink.Config{URL: *sinkURL})
		forward := mon.OnTransition
		mon.OnTransition = func(tr monitor.Transition) {
			if forward != nil {
				forward(tr)
			}
			events.Publish(tr)
		}
		go events.Run(ctx)
	}

	server.StartAsync()

	if *auto {
		if err := mon.Start(); err != nil {
			log.Error("start failed", "error", err)
			os.Exit(1)
		}
	}

	<-ctx.Done()

	if mon.State() == monitor.StateRunning {
		mon.Stop()
	}
	server.Shutdown()
}

// configForPreset maps a preset name to a configuration.
func configForPreset(name string) monitor.Config {
	switch name {
	case "strict":
		return monitor.StrictConfig()
	case "relaxed":
		return monitor.RelaxedConfig()
	default:
		return monitor.DefaultConfig()
	}
}

// buildSource wires either a replay script or a live camera pipeline.
func buildSource(script string, loop bool, camera int, faceModel, objectModel string) (detect.Source, func(), error) {
	if script != "" {
		replay, err := detect.LoadReplayScript(script)
		if err != nil {
			return nil, nil, err
		}
		replay.SetLoop(loop)
		log.Info("using replay source", "script", script, "loop", loop)
		return replay, func() {}, nil
	}

	webcam, err := detect.OpenWebcam(camera)
	if err != nil {
		return nil, nil, err
	}

	faceDetector, err := detect.NewYuNet(detect.YuNetConfig{
		ModelPath:        faceModel,
		ConfidenceThresh: 0.5,
		InputWidth:       320,
		InputHeight:      320,
	})
	if err != nil {
		webcam.Close()
		return nil, nil, err
	}

	objectDetector, err := detect.NewYOLO(detect.YOLOConfig{
		ModelPath:        objectModel,
		ConfidenceThresh: 0.5,
		NMSThresh:        0.45,
		InputWidth:       640,
		InputHeight:      640,
	})
	if err != nil {
		webcam.Close()
		faceDetector.Close()
		return nil, nil, err
	}

	width, height := webcam.FrameSize()
	source := detect.NewCameraSource(webcam, faceDetector, objectDetector, width, height)
	log.Info("using camera source", "device", camera, "width", width, "height", height)

	closer := func() {
		source.Close()
		webcam.Close()
	}
	return source, closer, nil
}
