package extract

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"

	"insurai/internal/domain/entity"
	"insurai/internal/errors"
)

// extractWord pulls the raw text out of a .docx file. The format is a zip
// archive whose word/document.xml holds the body; text lives in <w:t>
// elements and paragraphs end at </w:p>.
func extractWord(path string) (*entity.DocumentContent, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrap(err, "open docx archive")
	}
	defer archive.Close()

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f

			break
		}
	}
	if document == nil {
		return nil, errors.New("docx archive has no word/document.xml")
	}

	reader, err := document.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open docx document part")
	}
	defer reader.Close()

	text, err := decodeDocumentXML(reader)
	if err != nil {
		return nil, err
	}

	return &entity.DocumentContent{Text: text}, nil
}

func decodeDocumentXML(r io.Reader) (string, error) {
	var b strings.Builder
	decoder := xml.NewDecoder(r)
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.Wrap(err, "decode docx xml")
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if tok.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch tok.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			case "tab":
				b.WriteString("\t")
			}
		case xml.CharData:
			if inText {
				b.Write(tok)
			}
		}
	}

	return b.String(), nil
}
