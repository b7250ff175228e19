package config

import (
    "io"
    "log"
    "os"

    "gopkg.in/natefinch/lumberjack.v2"
)

// InitLogging routes the standard logger to stdout and a size-rotated log
// file. Rotation keeps LOG_MAX_BACKUPS old files of at most LOG_MAX_SIZE_MB
// megabytes each, pruned after LOG_MAX_AGE_DAYS days.
func InitLogging(cfg Configuration) {
    rotator := &lumberjack.Logger{
        Filename:   cfg.LOG_FILE,
        MaxSize:    cfg.LOG_MAX_SIZE_MB,
        MaxBackups: cfg.LOG_MAX_BACKUPS,
        MaxAge:     cfg.LOG_MAX_AGE_DAYS,
    }

    log.SetOutput(io.MultiWriter(os.Stdout, rotator))
    log.SetFlags(log.LstdFlags | log.Lshortfile)
}
