package files

type RegisterFileRequest struct {
	FileName string `json:"fileName" binding:"required,min=1,max=500"`
	FilePath string `json:"filePath" binding:"required,min=1"`
	FileSize int64  `json:"fileSize" binding:"required,gt=0"`
	FileType string `json:"fileType"`
}

type ListFilesResponse struct {
	Files []*FileRecord `json:"files"`
}
