package main

import (
    "context"

    "github.com/thywilljoshua/docx-extract/internal/ai"
    "github.com/thywilljoshua/docx-extract/internal/config"
    "github.com/thywilljoshua/docx-extract/internal/extract"
    "github.com/thywilljoshua/docx-extract/internal/logging"
    "github.com/thywilljoshua/docx-extract/internal/tool"
)

var globals struct {
    configPath string
    logLevel   string
    engine     string
}

// setup loads configuration and wires the tool with its logger.
func setup(ctx context.Context) (*tool.WordExtractor, *logging.Logger, error) {
    cfg, err := config.Load(globals.configPath)
    if err != nil {
        return nil, nil, err
    }
    if globals.logLevel != "" {
        cfg.Log.Level = globals.logLevel
    }
    if globals.engine != "" {
        cfg.Engine = globals.engine
    }

    log := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

    ex, err := extract.New(extract.Engine(cfg.Engine))
    if err != nil {
        return nil, nil, err
    }

    var captioner ai.Captioner = ai.Noop{}
    if cfg.Caption.Enabled {
        g, err := ai.NewGemini(ctx, cfg.Caption.APIKey, cfg.Caption.Model)
        if err != nil {
            log.Warn().Err(err).Msg("image captions disabled")
        } else {
            captioner = g
        }
    }

    t := tool.NewWordExtractor(ex, tool.Options{
        ScratchDir:   cfg.ScratchDir,
        MaxFileBytes: cfg.MaxFileBytes,
        Captioner:    captioner,
        Logger:       log,
    })
    log.Debug().Str("engine", string(ex.Engine())).Bool("captions", cfg.Caption.Enabled).Msg("tool ready")
    return t, log, nil
}
