package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kuradex-labs/kuradex/internal/core/domain"
)

// projectSettingsResponse is the wire shape the browser UI reads its
// field labels from.
type projectSettingsResponse struct {
	ProjectName        string `json:"projectName"`
	ObjectNameLabel    string `json:"objectNameLabel"`
	UUIDName           string `json:"uuidName"`
	ManagementCodeName string `json:"managementCodeName"`
	CategoryName       string `json:"categoryName"`
	Tag1Name           string `json:"tag1Name"`
	Tag2Name           string `json:"tag2Name"`
	Tag3Name           string `json:"tag3Name"`
}

func toSettingsResponse(settings domain.ProjectSettings) projectSettingsResponse {
	return projectSettingsResponse{
		ProjectName:        settings.ProjectName,
		ObjectNameLabel:    settings.Labels.ObjectName,
		UUIDName:           settings.Labels.UUID,
		ManagementCodeName: settings.Labels.ManagementCode,
		CategoryName:       settings.Labels.Category,
		Tag1Name:           settings.Labels.Tag1,
		Tag2Name:           settings.Labels.Tag2,
		Tag3Name:           settings.Labels.Tag3,
	}
}

func (s *Server) handleProjectSettings(c *gin.Context) {
	c.JSON(http.StatusOK, toSettingsResponse(s.catalog.Settings()))
}
