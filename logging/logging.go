// Package logging writes one JSON object per line for application events,
// tagged with the request they belong to.
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the request id middleware stores under.
const RequestIDKey = "requestID"

type entry struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	ReqID  string         `json:"req_id,omitempty"`
	IP     string         `json:"ip,omitempty"`
	Method string         `json:"method,omitempty"`
	Path   string         `json:"path,omitempty"`
	Status int            `json:"status,omitempty"`
	Action string         `json:"action"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

func write(level string, c *gin.Context, action string, err error, fields map[string]any) {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Action: action, Fields: fields}
	if c != nil {
		e.ReqID = c.GetString(RequestIDKey)
		e.IP = c.ClientIP()
		if c.Request != nil {
			e.Method = c.Request.Method
			e.Path = c.Request.URL.Path
		}
		e.Status = c.Writer.Status()
	}
	if err != nil {
		e.Err = err.Error()
	}
	b, _ := json.Marshal(e)
	log.Println(string(b))
}

func Info(c *gin.Context, action string, fields map[string]any) { write("info", c, action, nil, fields) }

func Audit(c *gin.Context, action string, fields map[string]any) {
	write("audit", c, action, nil, fields)
}

func Security(c *gin.Context, action string, fields map[string]any) {
	write("warn", c, action, nil, fields)
}

func Error(c *gin.Context, action string, err error, fields map[string]any) {
	write("error", c, action, err, fields)
}

// AccessLog is gin's request logger with the request id prepended.
func AccessLog() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(p gin.LogFormatterParams) string {
		return fmt.Sprintf("[GIN] %s | %v | %3d | %13v | %15s | %-7s %#v %s\n",
			p.TimeStamp.Format(time.RFC3339),
			p.Keys[RequestIDKey],
			p.StatusCode,
			p.Latency,
			p.ClientIP,
			p.Method,
			p.Path,
			p.ErrorMessage,
		)
	})
}
