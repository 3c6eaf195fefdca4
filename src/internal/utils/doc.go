// Package utils provides small file and path helpers shared by saya's packages.
//
//	absPath := utils.GetAbsolutePath("Pal/Saved/SaveGames/0", "/palworld")
//	// Returns: /palworld/Pal/Saved/SaveGames/0
//
//	if err := utils.WriteFile(iniPath, content); err != nil {
//	    return err
//	}
package utils
