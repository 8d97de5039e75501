package handler

import (
	"baupanel/internal/usecase"
)

var (
	folderHandler      *FolderHandler
	catalogHandler     *CatalogHandler
	projectHandler     *ProjectHandler
	customerHandler    *CustomerHandler
	projectFileHandler *ProjectFileHandler
	galleryHandler     *GalleryHandler
)

func Setup(
	folderUseCase *usecase.FolderUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	projectUseCase *usecase.ProjectUseCase,
	customerUseCase *usecase.CustomerUseCase,
	projectFileUseCase *usecase.ProjectFileUseCase,
	galleryUseCase *usecase.GalleryUseCase,
	maxUploadSizeMB int64,
) {
	folderHandler = NewFolderHandler(folderUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	projectHandler = NewProjectHandler(projectUseCase)
	customerHandler = NewCustomerHandler(customerUseCase)
	projectFileHandler = NewProjectFileHandler(projectFileUseCase, maxUploadSizeMB)
	galleryHandler = NewGalleryHandler(galleryUseCase)
}

func GetFolderHandler() *FolderHandler {
	return folderHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetProjectHandler() *ProjectHandler {
	return projectHandler
}

func GetCustomerHandler() *CustomerHandler {
	return customerHandler
}

func GetProjectFileHandler() *ProjectFileHandler {
	return projectFileHandler
}

func GetGalleryHandler() *GalleryHandler {
	return galleryHandler
}
