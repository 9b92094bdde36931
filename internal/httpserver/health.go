package httpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"tasks-timeline/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "tasks-timeline"
)

type healthResp struct {
	Status  string     `json:"status"`
	Service string     `json:"service"`
	Version string     `json:"version"`
	Uptime  string     `json:"uptime,omitempty"`
	Vault   *vaultResp `json:"vault,omitempty"`
}

type vaultResp struct {
	Root     string `json:"root"`
	Readable bool   `json:"readable"`
	Error    string `json:"error,omitempty"`
}

func (srv HTTPServer) newHealthResp(status string) healthResp {
	return healthResp{Status: status, Service: ServiceName, Version: HealthVersion}
}

// healthCheck reports that the process is up and for how long.
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	resp := srv.newHealthResp("healthy")
	resp.Uptime = time.Since(srv.startedAt).Truncate(time.Second).String()
	response.OK(c, resp)
}

// readyCheck reports ready only while the vault directory can be listed.
// @Summary Readiness Check
// @Description Check that the vault directory is readable
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is ready"
// @Failure 503 {object} response.Resp "Vault is not readable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	resp := srv.newHealthResp("ready")
	if srv.vaultRoot == "" {
		response.OK(c, resp)
		return
	}

	resp.Vault = &vaultResp{Root: srv.vaultRoot, Readable: true}
	if err := checkVaultReadable(srv.vaultRoot); err != nil {
		srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
		resp.Status = "not_ready"
		resp.Vault.Readable = false
		resp.Vault.Error = err.Error()
		response.Unavailable(c, "Vault is not readable", resp)
		return
	}
	response.OK(c, resp)
}

// liveCheck answers as long as the router is serving.
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("alive"))
}

func checkVaultReadable(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("vault root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault root %s is not a directory", root)
	}
	f, err := os.Open(root)
	if err != nil {
		return fmt.Errorf("vault root: %w", err)
	}
	defer f.Close()
	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("vault root: %w", err)
	}
	return nil
}

// logVaultState logs once at startup whether readiness will pass.
func (srv HTTPServer) logVaultState(ctx context.Context) {
	if srv.vaultRoot == "" {
		return
	}
	if err := checkVaultReadable(srv.vaultRoot); err != nil {
		srv.l.Warnf(ctx, "Vault not readable, /ready will report 503: %v", err)
		return
	}
	srv.l.Infof(ctx, "Vault root: %s", srv.vaultRoot)
}
