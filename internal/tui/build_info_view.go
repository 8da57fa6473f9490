// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/shopman/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := fmt.Sprintf("Приложение: shopman\nВерсия: %s\nДата сборки: %s\nКоммит: %s",
		info.BuildVersion(), info.BuildDate(), info.BuildCommit())
	return renderPage("О ПРОГРАММЕ", body, "esc: назад")
}
