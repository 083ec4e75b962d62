package report

import (
	"strings"

	"qualreport/internal/config"
)

// Stylesheet renders the report stylesheet with the palette injected. Colors
// come from configuration so a deployment can rebrand without touching the
// markup; everything else is fixed.
func Stylesheet(p config.PaletteConfig) string {
	return strings.NewReplacer(
		"{primary}", p.Primary,
		"{primary_dark}", p.PrimaryDark,
		"{success}", p.Success,
		"{warning_dark}", p.WarningDark,
		"{neutral}", p.Neutral,
		"{light}", p.Light,
		"{border}", p.Border,
	).Replace(stylesheet)
}

const stylesheet = `
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    background: linear-gradient(135deg, {primary} 0%, {primary_dark} 100%);
    padding: 20px;
    min-height: 100vh;
}

.container { max-width: 1200px; margin: 0 auto; }

.header {
    background: white;
    padding: 30px;
    border-radius: 10px;
    box-shadow: 0 4px 6px rgba(0,0,0,0.1);
    margin-bottom: 30px;
}

.header h1 {
    color: #2d3748;
    font-size: 28px;
    margin-bottom: 10px;
}

.header .meta { color: {neutral}; font-size: 14px; }

.header .debug-info {
    background: #e3f2fd;
    border: 1px solid {primary};
    border-radius: 6px;
    padding: 12px 15px;
    margin-top: 15px;
    color: {primary_dark};
    font-size: 12px;
    font-family: monospace;
}

.summary {
    background: white;
    padding: 20px 30px;
    border-radius: 10px;
    box-shadow: 0 4px 6px rgba(0,0,0,0.1);
    margin-bottom: 30px;
    display: flex;
    justify-content: space-around;
    flex-wrap: wrap;
}

.summary-item { text-align: center; padding: 10px 20px; }

.summary-value {
    font-size: 32px;
    font-weight: 700;
    color: {primary};
}

.summary-label {
    color: {neutral};
    font-size: 14px;
    margin-top: 5px;
}

.question-card {
    background: white;
    border-radius: 10px;
    padding: 30px;
    margin-bottom: 25px;
    box-shadow: 0 4px 6px rgba(0,0,0,0.1);
}

.question-header {
    border-bottom: 3px solid {primary};
    padding-bottom: 15px;
    margin-bottom: 20px;
}

.question-number {
    color: {primary};
    font-size: 14px;
    font-weight: 700;
    text-transform: uppercase;
    letter-spacing: 0.5px;
    margin-bottom: 8px;
}

.question-text {
    color: #1a202c;
    font-size: 18px;
    font-weight: 600;
    line-height: 1.5;
}

.question-meta {
    color: #a0aec0;
    font-size: 11px;
    font-family: monospace;
    margin-bottom: 8px;
}

.responses-list { margin-top: 15px; }

.respondent-row {
    padding: 15px;
    margin-bottom: 10px;
    background: {light};
    border-radius: 6px;
    border-left: 4px solid {primary};
}

.respondent-row:last-child { margin-bottom: 0; }
.respondent-row.single-response { border-left-color: {success}; }

.respondent-name { margin-bottom: 8px; }

.respondent-name-main {
    font-weight: 700;
    color: {primary};
    font-size: 14px;
}

.respondent-meta {
    display: block;
    font-size: 11px;
    color: {neutral};
    font-family: monospace;
    margin-top: 2px;
}

.respondent-answer {
    color: #4a5568;
    font-size: 15px;
    line-height: 1.6;
}

.no-response { color: #a0aec0; font-style: italic; }

.no-responses {
    color: #a0aec0;
    font-style: italic;
    padding: 15px;
    background: {light};
    border-radius: 6px;
    text-align: center;
}

.code-value {
    color: {warning_dark};
    font-style: italic;
    font-size: 13px;
}

.data-table {
    width: 100%;
    border-collapse: collapse;
    margin-top: 8px;
}

.data-table th.data-label {
    text-align: left;
    padding: 8px 15px 8px 0;
    font-weight: 600;
    color: #2d3748;
    border-bottom: 1px solid {border};
    width: 40%;
    vertical-align: top;
}

.data-table td.data-value {
    text-align: left;
    padding: 8px 0;
    color: #4a5568;
    border-bottom: 1px solid {border};
    vertical-align: top;
}

.data-table tr:last-child th,
.data-table tr:last-child td {
    border-bottom: none;
}

.grouped-table {
    width: 100%;
    border-collapse: collapse;
    background: white;
    border-radius: 6px;
    overflow: hidden;
    margin-top: 8px;
    font-size: 14px;
    border: 1px solid {border};
}

.grouped-table thead th {
    background: {success};
    color: white;
    padding: 10px 15px;
    text-align: center;
    font-weight: 600;
    border: 1px solid #007766;
    font-size: 13px;
}

.grouped-table thead th:first-child {
    background: {primary};
    text-align: left;
    border-color: #005588;
}

.grouped-table tbody th.row-header {
    background: #edf2f7;
    color: #2d3748;
    padding: 10px 15px;
    text-align: left;
    font-weight: 500;
    border: 1px solid {border};
    min-width: 180px;
}

.grouped-table td {
    padding: 10px 15px;
    text-align: center;
    border: 1px solid {border};
    font-size: 16px;
}

.grouped-table td.cell-yes {
    color: {success};
    font-weight: 700;
}

.grouped-table td.cell-no { color: #cbd5e0; }

.grouped-table tbody tr:nth-child(even) { background: #f7fafc; }

.vertical-list { list-style: none; padding: 0; margin: 0; }

.vertical-list li {
    padding: 6px 0 6px 20px;
    position: relative;
    border-bottom: 1px solid #edf2f7;
}

.vertical-list li:last-child { border-bottom: none; }

.vertical-list li::before {
    content: "\2022";
    color: {primary};
    font-weight: bold;
    position: absolute;
    left: 0;
}

.matrix-table {
    width: 100%;
    border-collapse: collapse;
    background: white;
    border-radius: 6px;
    overflow: hidden;
    margin-top: 8px;
    font-size: 14px;
    border: 1px solid {border};
}

.matrix-table thead th {
    background: {primary};
    color: white;
    padding: 12px 15px;
    text-align: center;
    font-weight: 600;
    border: 1px solid #005588;
}

.matrix-table thead th:first-child {
    background: {primary_dark};
    text-align: left;
}

.matrix-table tbody th.row-header {
    background: #edf2f7;
    color: #2d3748;
    padding: 12px 15px;
    text-align: left;
    font-weight: 600;
    border: 1px solid {border};
    min-width: 150px;
}

.matrix-table td {
    padding: 12px 15px;
    text-align: center;
    border: 1px solid {border};
}

.matrix-table td.empty-cell { color: #cbd5e0; }
.matrix-table tbody tr:nth-child(even) { background: #f7fafc; }

.url-link {
    color: {primary};
    text-decoration: none;
    word-break: break-all;
}

.url-link:hover { text-decoration: underline; }

.file-upload {
    background: #f0f4f8;
    padding: 8px 12px;
    border-radius: 6px;
    display: inline-block;
}

.file-upload a { color: {primary}; text-decoration: none; }

.coordinate {
    background: #fff3e0;
    color: #b35500;
    padding: 4px 8px;
    border-radius: 4px;
    font-family: monospace;
}

.timing { color: {neutral}; font-size: 13px; }

.long-text {
    background: {light};
    padding: 15px;
    border-radius: 6px;
    border-left: 3px solid {primary};
}

.long-text p { margin-bottom: 10px; }
.long-text p:last-child { margin-bottom: 0; }

.drill-down {
    display: flex;
    align-items: center;
    flex-wrap: wrap;
    gap: 4px;
}

.drill-level {
    background: #e3f2fd;
    padding: 4px 8px;
    border-radius: 4px;
}

.drill-arrow { color: {primary}; font-weight: bold; }

.json-data {
    background: #1a202c;
    color: #e2e8f0;
    padding: 15px;
    border-radius: 6px;
    overflow-x: auto;
    font-size: 12px;
}

@media (max-width: 768px) {
    body { padding: 10px; }
    .question-card { padding: 20px; }
    .matrix-table, .grouped-table { font-size: 12px; }

    .matrix-table thead th,
    .matrix-table tbody th.row-header,
    .matrix-table td { padding: 8px; }

    .grouped-table thead th,
    .grouped-table tbody th.row-header,
    .grouped-table td { padding: 6px 8px; }

    .summary { flex-direction: column; }
    .data-table th.data-label { width: 50%; }
}

@media print {
    body { background: white; padding: 0; }

    .question-card {
        box-shadow: none;
        border: 1px solid {border};
        page-break-inside: avoid;
    }

    .debug-info, .question-meta { display: none; }
}
`
