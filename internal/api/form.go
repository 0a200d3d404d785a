package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// uploadPage is the minimal statement-upload form served at "/". The page is
// a thin shell over the JSON API; all processing happens server-side in
// /api/v1/statements.
const uploadPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>ptaxfolio</title>
</head>
<body>
  <h1>ptaxfolio</h1>
  <p>Upload a brokerage activity statement (CSV) to compute holdings in USD and BRL at PTAX rates.</p>
  <form action="/api/v1/statements" method="post" enctype="multipart/form-data">
    <input type="file" name="statement" accept=".csv,text/csv" required>
    <button type="submit">Process statement</button>
  </form>
</body>
</html>
`

// UploadForm handles GET / and serves the statement upload page.
func UploadForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(uploadPage))
}
