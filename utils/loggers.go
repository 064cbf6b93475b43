package utils

import (
	"log"
	"os"
)

var (
	infoLogger    *log.Logger
	warningLogger *log.Logger
	errorLogger   *log.Logger
)

func InitLogger() {
	infoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	warningLogger = log.New(os.Stdout, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	errorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

func LogInfo(format string, args ...interface{}) {
	if infoLogger == nil {
		InitLogger()
	}
	infoLogger.Printf(format, args...)
}

func LogWarning(format string, args ...interface{}) {
	if warningLogger == nil {
		InitLogger()
	}
	warningLogger.Printf(format, args...)
}

func LogError(message string, err error) {
	if errorLogger == nil {
		InitLogger()
	}
	if err != nil {
		errorLogger.Printf("%s: %v", message, err)
	} else {
		errorLogger.Println(message)
	}
}
